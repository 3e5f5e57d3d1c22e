package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"nextel-storefront-be/internal/config"
	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/repository/memory"
	"nextel-storefront-be/internal/service"
	"nextel-storefront-be/pkg/analytics"
	"nextel-storefront-be/pkg/remote"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// An in-process walkthrough of the storefront flows: chatbot, cart, checkout.
// Useful for demoing without a frontend. The upstream API is contacted if
// reachable; with failure masking on, checkout completes either way.

type consoleSink struct{}

func (consoleSink) Emit(eventName string, fields map[string]string) {
	color.HiBlack("    [analytics] %s %v", eventName, fields)
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func main() {
	cfg := config.Load()
	ctx := context.Background()

	bot := color.New(color.FgCyan)
	user := color.New(color.FgGreen, color.Bold)
	header := color.New(color.FgYellow, color.Bold)

	var sink analytics.Sink = consoleSink{}
	gateway := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout)

	conversations := service.NewConversationService(
		memory.NewConversationRepository(), sink, nil,
		50*time.Millisecond, 20*time.Millisecond,
	)
	cart := service.NewCartService(memory.NewKeyedStore(), sink, nopLogger{})
	checkout := service.NewCheckoutService(
		memory.NewCheckoutRepository(), cart, gateway,
		memory.NewOrderRepository(), sink, nopLogger{}, true,
	)

	header.Println("=== NexBot conversation ===")
	conv, err := conversations.Open(ctx)
	if err != nil {
		log.Fatalf("open conversation: %v", err)
	}
	bot.Printf("NexBot: %s\n", conv.Transcript[0].Text)

	for _, optionId := range []string{"billing", "billing-view"} {
		res, err := conversations.SelectOption(ctx, conv.Id, optionId)
		if err != nil {
			log.Fatalf("select %s: %v", optionId, err)
		}
		user.Printf("You:    %s\n", res.Transcript[len(res.Transcript)-1].Text)

		reply := waitForReply(ctx, conversations, conv.Id, len(res.Transcript)+1)
		bot.Printf("NexBot: %s\n", reply)
	}

	header.Println("\n=== Cart ===")
	boost := entity.Product{Id: "prod-boost", Name: "5G Ultra Speed Boost", Price: 19.99, CategoryName: "Upgrades"}
	snapshot, err := cart.AddItem(ctx, "demo-user", boost, 2)
	if err != nil {
		log.Fatalf("add item: %v", err)
	}
	fmt.Printf("Cart: %d item(s), total $%.2f\n", snapshot.Count, snapshot.Total)

	header.Println("\n=== Checkout ===")
	if _, err := checkout.Begin(ctx, "demo-user"); err != nil {
		log.Fatalf("begin checkout: %v", err)
	}
	if _, err := checkout.SetShipping(ctx, "demo-user", &demoShipping); err != nil {
		log.Fatalf("shipping: %v", err)
	}
	if _, err := checkout.SetPayment(ctx, "demo-user", &demoPayment); err != nil {
		log.Fatalf("payment: %v", err)
	}

	review, err := checkout.Review(ctx, "demo-user")
	if err != nil {
		log.Fatalf("review: %v", err)
	}
	fmt.Printf("Review: subtotal $%.2f, tax $%.2f, total $%.2f, card ****%s\n",
		review.Subtotal, review.Tax, review.GrandTotal, review.CardLast4)

	order, err := checkout.Submit(ctx, "demo-user")
	if err != nil {
		log.Fatalf("submit: %v", err)
	}
	color.New(color.FgGreen, color.Bold).Printf("Order %s %s, total $%.2f\n", order.OrderId, order.Status, order.Total)
}

func waitForReply(ctx context.Context, svc service.IConversationService, id uuid.UUID, wantEntries int) string {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		res, err := svc.Get(ctx, id)
		if err == nil && len(res.Transcript) >= wantEntries && !res.AwaitingReply {
			return res.Transcript[len(res.Transcript)-1].Text
		}
		time.Sleep(10 * time.Millisecond)
	}
	return "(no reply)"
}

var demoShipping = dto.ShippingRequest{
	Name:    "Demo Shopper",
	Email:   "demo@example.com",
	Phone:   "555-0100",
	Address: "1 Main St",
	City:    "Springfield",
	ZipCode: "12345",
}

var demoPayment = dto.PaymentRequest{
	CardNumber: "4111111111111111",
	CardExpiry: "12/27",
	CardCvc:    "123",
}
