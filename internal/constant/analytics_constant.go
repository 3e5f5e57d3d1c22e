package constant

// Analytics event names. Fields are flat string-valued maps mirroring the
// storefront data layer.
const (
	EventCartAdd            = "cart_add"
	EventCartRemove         = "cart_remove"
	EventCartUpdateQuantity = "cart_update_quantity"

	EventChatbotOpened         = "chatbot_opened"
	EventChatbotOptionSelected = "chatbot_option_selected"
	EventChatbotPath           = "chatbot_path"
	EventChatbotRestart        = "chatbot_restart"

	EventBeginCheckout = "begin_checkout"
	EventCheckoutStep  = "checkout_step"
	EventPurchase      = "purchase"

	EventSupportSubmit = "support_submit"

	EventUserLogin    = "user_login"
	EventUserRegister = "user_register"
)
