package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nuwanw/lankalist/internal/client/cities"
	"github.com/nuwanw/lankalist/internal/client/services"
)

// Create walks the user through the new-listing form and performs the
// create. If the listing record is created but its image fails to attach,
// the listing is kept and the user is told it went up without an image.
func (a *App) Create(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	price, err := GetFloat(a.reader, "Price (LKR)", 0, os.Stdout)
	if err != nil {
		return err
	}

	cats, err := a.loadCategories(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to load categories, using defaults", "err", err)
	}
	fmt.Printf("Categories: %s\n", strings.Join(cats, ", "))
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}

	city, err := getSimpleText(a.reader, "City", os.Stdout)
	if err != nil {
		return err
	}
	if city != "" {
		if _, ok := cities.GetCoordinates(city); !ok {
			fmt.Printf("Unknown city %q. Known cities: %s\n", city, strings.Join(cities.Names(), ", "))
			return nil
		}
	}

	tags, err := GetCSV(a.reader, "Tags (comma separated)", os.Stdout)
	if err != nil {
		return err
	}

	expiryDays, err := GetInt(a.reader, "Days until expiry", 30, os.Stdout)
	if err != nil {
		return err
	}

	imagePath, err := getSimpleText(a.reader, "Image file path", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.listingService.Create(ctx, services.CreateForm{
		Title:       title,
		Description: description,
		Price:       price,
		City:        city,
		Category:    category,
		Tags:        tags,
		ExpiryDays:  expiryDays,
		ImagePath:   imagePath,
	})

	var uploadErr *services.ImageUploadError
	if errors.As(err, &uploadErr) {
		fmt.Printf("Listing %s created, but the image could not be attached: %v\n", uploadErr.ListingID, uploadErr.Unwrap())
		fmt.Println("You can add one later with 'addimage' or 'addimageurl'.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Listing created: %s (%s)\n", created.Title, created.ID)
	return nil
}
