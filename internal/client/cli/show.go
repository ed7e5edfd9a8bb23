package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nuwanw/lankalist/internal/client/render"
	"github.com/nuwanw/lankalist/internal/common"
)

// Show prompts for a listing id, fetches the full record, and enters a
// small sub-loop for paging through its images.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Listing id", os.Stdout)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}

	listing, err := a.listingService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Println("Listing not found. It may have expired or been removed.")
			return nil
		}
		return err
	}

	carousel := render.NewCarousel(len(listing.Images))
	fmt.Println(render.Detail(a.apiBase, *listing, carousel))

	if !carousel.HasImages() || carousel.Count() == 1 {
		return nil
	}

	for {
		cmd, err := getSimpleText(a.reader, "(n)ext / (p)rev image, (q) back", os.Stdout)
		if err != nil {
			return err
		}
		switch cmd {
		case "n":
			carousel.Next()
		case "p":
			carousel.Prev()
		case "q", "":
			return nil
		default:
			continue
		}
		fmt.Println(render.Detail(a.apiBase, *listing, carousel))
	}
}
