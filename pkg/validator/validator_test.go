package validator

import "testing"

type listingForm struct {
	Name  string  `validate:"required,min=5,max=64"`
	Price float64 `validate:"required,gte=0.1,lte=200"`
	Level int     `validate:"required,gte=1,lte=90"`
}

func TestValidateStruct_Clean(t *testing.T) {
	form := listingForm{Name: "Lumine Test", Price: 50, Level: 80}

	if errs := ValidateStruct(form); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateStruct_ReportsEachFailedField(t *testing.T) {
	form := listingForm{Name: "abc", Price: 300, Level: 0}

	errs := ValidateStruct(form)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(errs))
	}

	tags := map[string]string{}
	for _, e := range errs {
		tags[e.FailedField] = e.Tag
	}
	if tags["listingForm.Name"] != "min" {
		t.Errorf("expected Name to fail on min, got %q", tags["listingForm.Name"])
	}
	if tags["listingForm.Price"] != "lte" {
		t.Errorf("expected Price to fail on lte, got %q", tags["listingForm.Price"])
	}
	if tags["listingForm.Level"] != "required" {
		t.Errorf("expected Level to fail on required, got %q", tags["listingForm.Level"])
	}
}
