package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nuwanw/lankalist/internal/client/models"
	"github.com/nuwanw/lankalist/internal/client/render"
)

// Mine lists the caller's own listings. The result is kept on the app so
// edit and delete can update the view optimistically without a re-fetch.
func (a *App) Mine(ctx context.Context) error {
	listings, err := a.listingService.Mine(ctx)
	if err != nil {
		return err
	}
	a.mine = listings

	if len(listings) == 0 {
		fmt.Println("You have no listings yet. Type 'create' to post one.")
		return nil
	}

	for _, l := range listings {
		fmt.Println(render.Card(a.apiBase, l))
	}
	return nil
}

// Edit prompts for the fields of an owned listing. Empty answers leave a
// field unchanged; only changed fields go on the wire.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Listing id to edit", os.Stdout)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}

	var update models.ListingUpdate

	title, err := getSimpleText(a.reader, "Title (empty keeps)", os.Stdout)
	if err != nil {
		return err
	}
	if title != "" {
		update.Title = &title
	}

	description, err := getSimpleText(a.reader, "Description (empty keeps)", os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		update.Description = &description
	}

	priceText, err := getSimpleText(a.reader, "Price (empty keeps)", os.Stdout)
	if err != nil {
		return err
	}
	if priceText != "" {
		var price float64
		if _, err := fmt.Sscanf(priceText, "%f", &price); err != nil {
			return fmt.Errorf("not a number: %q", priceText)
		}
		update.Price = &price
	}

	city, err := getSimpleText(a.reader, "City (empty keeps)", os.Stdout)
	if err != nil {
		return err
	}
	if city != "" {
		update.City = &city
	}

	category, err := getSimpleText(a.reader, "Category (empty keeps)", os.Stdout)
	if err != nil {
		return err
	}
	if category != "" {
		update.Category = &category
	}

	tagsText, err := getSimpleText(a.reader, "Tags, comma separated (empty keeps)", os.Stdout)
	if err != nil {
		return err
	}
	if tagsText != "" {
		var tags []string
		for _, t := range strings.Split(tagsText, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		update.Tags = tags
	}

	updated, err := a.listingService.Update(ctx, id, update)
	if err != nil {
		return err
	}

	imageURL, err := getSimpleText(a.reader, "Add image URL (empty skips)", os.Stdout)
	if err != nil {
		return err
	}
	if imageURL != "" {
		if _, err := a.listingService.AddImageURL(ctx, id, imageURL); err != nil {
			fmt.Printf("Image not attached: %v\n", err)
		}
	}

	a.replaceMine(*updated)
	fmt.Printf("Listing updated: %s\n", updated.Title)
	return nil
}

// Delete removes an owned listing after confirmation.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Listing id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}

	ok, err := GetConfirm(a.reader, "Delete listing "+id+"? This cannot be undone.", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Kept.")
		return nil
	}

	if err := a.listingService.Delete(ctx, id); err != nil {
		return err
	}

	a.removeMine(id)
	fmt.Println("Listing deleted.")
	return nil
}

// AddImage uploads a local image file to an owned listing.
func (a *App) AddImage(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Listing id", os.Stdout)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Image file path", os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.listingService.UploadImage(ctx, id, path)
	if err != nil {
		return err
	}
	fmt.Printf("Image attached: %s\n", render.ResolveImageURL(a.apiBase, result.URL))
	return nil
}

// AddImageURL attaches an externally hosted image to an owned listing.
func (a *App) AddImageURL(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Listing id", os.Stdout)
	if err != nil {
		return err
	}
	imageURL, err := getSimpleText(a.reader, "Image URL", os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.listingService.AddImageURL(ctx, id, imageURL)
	if err != nil {
		return err
	}
	fmt.Printf("Image attached: %s\n", result.URL)
	return nil
}

func (a *App) replaceMine(updated models.Listing) {
	for i, l := range a.mine {
		if l.ID == updated.ID {
			a.mine[i] = updated
			return
		}
	}
}

func (a *App) removeMine(id string) {
	for i, l := range a.mine {
		if l.ID == id {
			a.mine = append(a.mine[:i], a.mine[i+1:]...)
			return
		}
	}
}
