package validate_test

import (
	"testing"

	"github.com/ecofinds/ecofinds/pkg/validate"
)

type listingInput struct {
	Title       string  `json:"title"       validate:"required,max=255"`
	Description string  `json:"description" validate:"nullable,max=5000"`
	Category    string  `json:"category"    validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Condition   string  `json:"condition"   validate:"nullable,in=new,like new,used"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(listingInput{
		Title:    "Leather Jacket",
		Category: "Clothes",
		Price:    120,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(listingInput{Price: 10})
	if _, ok := errs["title"]; !ok {
		t.Error("expected title to be required")
	}
	if _, ok := errs["category"]; !ok {
		t.Error("expected category to be required")
	}
}

func TestNullableSkipsRemainingRules(t *testing.T) {
	errs := validate.Struct(listingInput{
		Title:    "ok",
		Category: "Books",
		// Description and Condition empty: nullable lets them through.
	})
	if _, ok := errs["description"]; ok {
		t.Error("empty nullable field should not error")
	}
	if _, ok := errs["condition"]; ok {
		t.Error("empty nullable field should not error")
	}
}

func TestGteRejectsNegative(t *testing.T) {
	errs := validate.Struct(listingInput{
		Title:    "ok",
		Category: "Books",
		Price:    -1,
	})
	if _, ok := errs["price"]; !ok {
		t.Error("expected price error for negative value")
	}
}

func TestInRuleWithMultiValueParam(t *testing.T) {
	errs := validate.Struct(listingInput{
		Title:     "ok",
		Category:  "Books",
		Condition: "like new",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}

	errs = validate.Struct(listingInput{
		Title:     "ok",
		Category:  "Books",
		Condition: "broken",
	})
	if _, ok := errs["condition"]; !ok {
		t.Error("expected condition error for value outside the list")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}

	if errs := validate.Struct(in{Email: "not-an-email"}); len(errs) == 0 {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "valid@example.com"}); len(errs) != 0 {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestMinMaxOnStrings(t *testing.T) {
	type in struct {
		Password string `json:"password" validate:"required,min=8"`
	}

	if errs := validate.Struct(in{Password: "short"}); len(errs) == 0 {
		t.Error("expected min length error")
	}
	if errs := validate.Struct(in{Password: "long enough"}); len(errs) != 0 {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestFieldNamesComeFromJSONTags(t *testing.T) {
	type in struct {
		DisplayName string `json:"display_name" validate:"required"`
	}

	errs := validate.Struct(in{})
	if _, ok := errs["display_name"]; !ok {
		t.Errorf("expected error keyed by json tag, got: %v", errs)
	}
}
