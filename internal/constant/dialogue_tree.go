package constant

import "nextel-storefront-be/internal/entity"

const (
	DialogueRootId   = "root"
	DialogueRootPath = "Welcome"
)

// DialogueTree is the full NexBot decision tree. It is static data: defined
// once here, never mutated at runtime. Traversal state lives per conversation,
// not in the tree.
var DialogueTree = &entity.DialogueNode{
	Id:      DialogueRootId,
	Message: "Hi there! 👋 I'm NexBot, your virtual assistant. How can I help you today?",
	Options: []*entity.DialogueNode{
		{
			Id:      "billing",
			Label:   "💳 Billing & Payments",
			Message: "I can help with billing questions. What would you like to know?",
			Options: []*entity.DialogueNode{
				{
					Id:      "billing-view",
					Label:   "📄 View my bill",
					Message: "You can view your bill by logging into your account and navigating to Dashboard > Billing. Need anything else about billing?",
					Options: []*entity.DialogueNode{
						{
							Id:      "billing-view-help",
							Label:   "❓ I can't find it",
							Message: "No worries! Go to nextel.com, click \"Sign In\" at the top right, then go to Dashboard. Select \"Billing\" from the sidebar. If you still need help, I can connect you to an agent.",
							Options: []*entity.DialogueNode{
								{Id: "billing-view-agent", Label: "👤 Connect to agent", Message: "I'll connect you to a billing specialist. Please call 1-800-NEXTEL or submit a query on our FAQ page. Our team is available 24/7!"},
								{Id: "billing-view-done", Label: "✅ That helped, thanks!", Message: "Great! Glad I could help. Is there anything else you need?"},
							},
						},
						{Id: "billing-view-done2", Label: "✅ Got it, thanks!", Message: "Happy to help! Let me know if you need anything else."},
					},
				},
				{
					Id:      "billing-payment",
					Label:   "💰 Make a payment",
					Message: "You can make a payment through Dashboard > Billing > Make Payment. We accept credit/debit cards, PayPal, Apple Pay, and Google Pay. Would you like more help?",
					Options: []*entity.DialogueNode{
						{Id: "billing-payment-methods", Label: "🔄 Other payment methods", Message: "We also accept bank transfers and in-store payments. Visit any NexTel store to pay in person, or set up auto-pay for hassle-free billing!"},
						{Id: "billing-payment-done", Label: "✅ That's helpful!", Message: "Glad to hear it! Feel free to ask anything else."},
					},
				},
				{
					Id:      "billing-dispute",
					Label:   "⚠️ Dispute a charge",
					Message: "Sorry about that! For billing disputes, please call our billing team at 1-800-NEXTEL or submit a detailed query through our FAQ page support form. We'll investigate within 48 hours.",
					Options: []*entity.DialogueNode{
						{Id: "billing-dispute-faq", Label: "📝 Go to support form", Message: "You can find the support form at the bottom of our FAQ page. Select \"Billing\" as the category and describe the charge you'd like to dispute."},
						{Id: "billing-dispute-done", Label: "✅ Thanks!", Message: "You're welcome! We'll make sure it gets resolved."},
					},
				},
			},
		},
		{
			Id:      "plans",
			Label:   "📶 Plans & Upgrades",
			Message: "Looking to explore plans or upgrade? Here's how I can help:",
			Options: []*entity.DialogueNode{
				{
					Id:      "plans-current",
					Label:   "📋 View current plans",
					Message: "We offer Basic ($29/mo), Pro ($59/mo), and Enterprise ($99/mo) plans. Visit our Plans page for detailed comparisons. Would you like to know more?",
					Options: []*entity.DialogueNode{
						{Id: "plans-compare", Label: "🔍 Compare plans in detail", Message: "Head to our Plans page at /plans to see a full comparison of features, data limits, and pricing. You can also switch plans instantly from your Dashboard!"},
						{Id: "plans-recommend", Label: "💡 Recommend a plan", Message: "For personal use, our Pro plan is the most popular — it includes 25GB data, 5G access, and priority support at $59/mo. For families or businesses, check out our Enterprise plan!"},
					},
				},
				{
					Id:      "plans-upgrade",
					Label:   "⬆️ Upgrade options",
					Message: "Great choice! We have device upgrades, plan upgrades, speed boosts, and add-ons — all with special savings. Check our Upgrades page for the latest deals!",
					Options: []*entity.DialogueNode{
						{Id: "plans-upgrade-how", Label: "🔄 How to upgrade", Message: "Visit our Upgrades page, select the upgrade you want, and click \"Get This Upgrade.\" It'll be added to your cart and activated instantly after payment!"},
						{Id: "plans-upgrade-deals", Label: "🏷️ Current deals", Message: "Right now we have up to 50% off on device upgrades and 33% off speed boosts! Visit the Upgrades page for all current promotions."},
					},
				},
				{
					Id:      "plans-cancel",
					Label:   "❌ Cancel plan",
					Message: "We're sorry to hear that! You can cancel anytime from Dashboard > My Plan > Cancel. No fees or penalties apply. Would you consider a downgrade instead?",
					Options: []*entity.DialogueNode{
						{Id: "plans-downgrade", Label: "⬇️ Yes, tell me about downgrade", Message: "Instead of canceling, you can downgrade to our Basic plan at just $29/mo. You'll keep your number and account. Go to Dashboard > My Plan to make the switch."},
						{Id: "plans-cancel-confirm", Label: "🚪 No, I want to cancel", Message: "Understood. Please go to Dashboard > My Plan > Cancel, or contact support at 1-800-NEXTEL. Your service will remain active until the end of your billing cycle."},
					},
				},
			},
		},
		{
			Id:      "technical",
			Label:   "🔧 Technical Support",
			Message: "Let's get your technical issue resolved! What kind of problem are you experiencing?",
			Options: []*entity.DialogueNode{
				{
					Id:      "tech-network",
					Label:   "📡 Network issues",
					Message: "I'm sorry you're having network problems. Let me help troubleshoot. Try these steps:\n\n1. Toggle Airplane Mode on/off\n2. Restart your device\n3. Check our coverage map\n\nDid that help?",
					Options: []*entity.DialogueNode{
						{Id: "tech-network-yes", Label: "✅ Yes, it's working now!", Message: "Excellent! Glad the troubleshooting worked. If it happens again, don't hesitate to reach out!"},
						{Id: "tech-network-no", Label: "❌ Still not working", Message: "I'm sorry about that. Please report the issue through our FAQ page support form or call 1-800-NEXTEL. Our network team monitors issues 24/7 and will prioritize your area."},
					},
				},
				{
					Id:      "tech-device",
					Label:   "📱 Device problems",
					Message: "What kind of device issue are you facing?",
					Options: []*entity.DialogueNode{
						{Id: "tech-device-setup", Label: "🔧 Device setup help", Message: "For device setup, insert your NexTel SIM card, power on your device, and follow the on-screen instructions. If you need your APN settings, go to Settings > Network > Access Point Names and select \"NexTel.\""},
						{Id: "tech-device-repair", Label: "🔨 Device repair", Message: "For device repairs, visit any NexTel store or authorized service center. If your device is under warranty, repairs may be free. You can also check warranty status in Dashboard > My Devices."},
					},
				},
				{
					Id:      "tech-internet",
					Label:   "🌐 Slow internet speed",
					Message: "Slow speeds can be frustrating! Try these:\n\n1. Check if you've exceeded your data limit\n2. Move to an area with better signal\n3. Close background apps\n4. Consider a speed boost add-on\n\nWould you like more help?",
					Options: []*entity.DialogueNode{
						{Id: "tech-internet-boost", Label: "🚀 Tell me about speed boosts", Message: "Our 5G Ultra Speed Boost gives you priority network access with speeds up to 3 Gbps for just $19.99/mo! Check the Upgrades page for details."},
						{Id: "tech-internet-report", Label: "📋 Report the issue", Message: "Please submit a report through our FAQ page support form with your location and time of the slow speeds. Our team will investigate within 24 hours."},
					},
				},
			},
		},
		{
			Id:      "account",
			Label:   "👤 Account Help",
			Message: "I can help with your account. What do you need?",
			Options: []*entity.DialogueNode{
				{
					Id:      "account-login",
					Label:   "🔐 Login issues",
					Message: "Having trouble logging in? Here are some options:",
					Options: []*entity.DialogueNode{
						{Id: "account-reset", Label: "🔑 Reset password", Message: "Go to the Login page and click \"Forgot Password.\" Enter your email address and we'll send you a reset link within minutes. Check your spam folder if you don't see it!"},
						{Id: "account-locked", Label: "🔒 Account locked", Message: "If your account is locked due to multiple failed attempts, wait 30 minutes or contact support at 1-800-NEXTEL for immediate assistance."},
					},
				},
				{
					Id:      "account-update",
					Label:   "✏️ Update my info",
					Message: "You can update your personal information from Dashboard > Account Settings. This includes your name, email, phone number, and address. Changes take effect immediately.",
					Options: []*entity.DialogueNode{
						{Id: "account-update-done", Label: "✅ Got it!", Message: "Great! Let me know if you need help with anything else."},
					},
				},
				{
					Id:      "account-delete",
					Label:   "🗑️ Delete account",
					Message: "We're sorry to see you go. To delete your account, please contact our support team at 1-800-NEXTEL or use the support form on our FAQ page. Account deletion takes 30 days and is irreversible.",
					Options: []*entity.DialogueNode{
						{Id: "account-delete-agent", Label: "📞 Contact support", Message: "You can call us at 1-800-NEXTEL (24/7) or submit a request through the support form on our FAQ page. We'll process your request and confirm via email."},
					},
				},
			},
		},
		{
			Id:      "other",
			Label:   "💬 Something else",
			Message: "I'd love to help! For specific queries, you can:",
			Options: []*entity.DialogueNode{
				{Id: "other-faq", Label: "❓ Browse FAQ", Message: "Visit our comprehensive FAQ page for detailed answers to common questions across all topics — accounts, billing, plans, devices, network, and support."},
				{Id: "other-support", Label: "📝 Submit a support query", Message: "Use the support form at the bottom of our FAQ page to submit a detailed query. Our team responds within 24 hours."},
				{Id: "other-call", Label: "📞 Call us", Message: "Our support team is available 24/7 at 1-800-NEXTEL. We're always happy to help!"},
			},
		},
	},
}

// DialogueIndex maps node id -> node for O(1) lookup of the conversation's
// current position.
var DialogueIndex = buildIndex(DialogueTree)

func buildIndex(root *entity.DialogueNode) map[string]*entity.DialogueNode {
	index := make(map[string]*entity.DialogueNode)
	var walk func(n *entity.DialogueNode)
	walk = func(n *entity.DialogueNode) {
		index[n.Id] = n
		for _, opt := range n.Options {
			walk(opt)
		}
	}
	walk(root)
	return index
}
