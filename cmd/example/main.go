package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/simplesocial/socialnet/pkg/socialnet"
	"github.com/simplesocial/socialnet/pkg/socialnet/config"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	svc, err := cfg.BuildService(os.Stdout)
	if err != nil {
		log.Fatalf("build service: %v", err)
	}

	if err := run(context.Background(), svc); err != nil {
		log.Fatalf("scenario failed: %v", err)
	}
}

// run walks the service through a small network: two accounts, a follow
// edge, one post of each kind, likes, comments, and a sale lifecycle.
func run(ctx context.Context, svc socialnet.Service) error {
	alice, err := svc.Register(ctx, socialnet.RegisterRequest{Username: "alice", Password: "pass1"})
	if err != nil {
		return err
	}
	bob, err := svc.Register(ctx, socialnet.RegisterRequest{Username: "bob", Password: "pass2"})
	if err != nil {
		return err
	}

	if err := svc.Follow(ctx, alice.Username, bob.Username); err != nil {
		return err
	}

	if _, err := socialnet.PublishText(ctx, svc, bob.Username, "hi"); err != nil {
		return err
	}

	if _, err := socialnet.PublishImage(ctx, svc, bob.Username, "photos/sunset.jpg"); err != nil {
		return err
	}

	bike, err := socialnet.PublishSale(ctx, svc, bob.Username, "bike", 100, "NY")
	if err != nil {
		return err
	}

	if err := svc.Like(ctx, bike.ID, alice.Username); err != nil {
		return err
	}
	if err := svc.Comment(ctx, socialnet.CommentRequest{PostID: bike.ID, Actor: alice.Username, Text: "still available?"}); err != nil {
		return err
	}

	if err := svc.ApplyDiscount(ctx, socialnet.DiscountRequest{PostID: bike.ID, Percent: 10, Password: "pass2"}); err != nil {
		return err
	}
	if _, err := svc.MarkSold(ctx, bike.ID, "pass2"); err != nil {
		return err
	}

	summary, err := svc.Render(ctx)
	if err != nil {
		return err
	}
	fmt.Print(summary)

	for _, username := range []string{alice.Username, bob.Username} {
		notifications, err := svc.Notifications(ctx, username)
		if err != nil {
			return err
		}
		fmt.Printf("%s's notifications:\n", username)
		for _, n := range notifications {
			fmt.Println(n)
		}
	}

	return nil
}
