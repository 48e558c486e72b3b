// Package cart holds the student's course cart and the checkout prelude.
package cart

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/core/course"
)

// Item is what the cart views render: a projection of the backend's richer
// enrollment object down to five display fields. Unique by ID.
type Item struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Instructor string  `json:"instructor"`
	Price      float64 `json:"price"`
	Thumbnail  string  `json:"thumbnail"`
}

// enrollment is the backend's cart entry; everything beyond the projected
// fields is dropped client-side.
type enrollment struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Instructor string           `json:"instructor"`
	Price      float64          `json:"price"`
	Thumbnail  string           `json:"thumbnail"`
	Chapters   []course.Chapter `json:"chapters,omitempty"`
	Progress   float64          `json:"progress,omitempty"`
}

func (e enrollment) item() Item {
	return Item{
		ID:         e.ID,
		Title:      e.Title,
		Instructor: e.Instructor,
		Price:      e.Price,
		Thumbnail:  e.Thumbnail,
	}
}

func projectItems(enrollments []enrollment) []Item {
	items := make([]Item, 0, len(enrollments))
	for _, e := range enrollments {
		items = append(items, e.item())
	}
	return items
}

// CheckoutCard is the payment form. The rules are the platform's demo
// validation (12-digit number, 3-digit CVV); the card data itself is never
// sent anywhere.
type CheckoutCard struct {
	HolderName string `json:"holderName" validate:"required"`
	Number     string `json:"number" validate:"required,cardnum"`
	Expiry     string `json:"expiry" validate:"required"`
	CVV        string `json:"cvv" validate:"required,cvv"`
}

func (cc *CheckoutCard) Validate(validate *validator.Validate, translator ut.Translator) error {
	cc.HolderName = core.CleanString(cc.HolderName)
	cc.Number = core.CleanString(cc.Number)
	cc.CVV = core.CleanString(cc.CVV)
	if err := validate.Struct(cc); err != nil {
		return core.TranslateValidationErrors(err, translator)
	}
	return nil
}
