package socialnet

import "context"

// Convenience helpers wrapping Publish for each post variant.

// PublishText publishes a text post authored by author.
func PublishText(ctx context.Context, svc Service, author, body string) (*Post, error) {
	return svc.Publish(ctx, PublishPostRequest{
		Author: author,
		Kind:   PostKindText,
		Body:   body,
	})
}

// PublishImage publishes an image post referencing an opaque asset.
func PublishImage(ctx context.Context, svc Service, author, imageRef string) (*Post, error) {
	return svc.Publish(ctx, PublishPostRequest{
		Author:   author,
		Kind:     PostKindImage,
		ImageRef: imageRef,
	})
}

// PublishSale publishes a sale listing; the item starts available.
func PublishSale(ctx context.Context, svc Service, author, item string, price float64, location string) (*Post, error) {
	return svc.Publish(ctx, PublishPostRequest{
		Author:   author,
		Kind:     PostKindSale,
		Item:     item,
		Price:    price,
		Location: location,
	})
}
