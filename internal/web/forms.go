package web

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// FormError is a rejected form submission. It reaches the user as plain
// text with a 400 status.
type FormError struct {
	Message string
}

func (e *FormError) Error() string {
	return e.Message
}

func formErrorf(format string, args ...any) *FormError {
	return &FormError{Message: fmt.Sprintf(format, args...)}
}

type productForm struct {
	Name        string `form:"name" validate:"required,max=255"`
	Description string `form:"description"`
	Price       decimal.Decimal
	Stock       int `form:"stock" validate:"gte=0"`
}

type orderForm struct {
	ProductID int64 `form:"product_id" validate:"required,gt=0"`
	Quantity  int   `form:"quantity" validate:"required,gt=0"`
}

// parseProductForm coerces the raw form values into a typed request and
// validates it before anything touches the store.
func parseProductForm(r *http.Request) (*productForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, formErrorf("invalid form submission: %v", err)
	}

	form := &productForm{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}

	price, err := decimal.NewFromString(strings.TrimSpace(r.PostFormValue("price")))
	if err != nil {
		return nil, formErrorf("price must be a decimal number")
	}
	if price.IsNegative() {
		return nil, formErrorf("price must not be negative")
	}
	form.Price = price

	stock, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("stock")))
	if err != nil {
		return nil, formErrorf("stock must be a whole number")
	}
	form.Stock = stock

	if err := validate.Struct(form); err != nil {
		return nil, formatValidationErrors(err)
	}

	return form, nil
}

func parseOrderForm(r *http.Request) (*orderForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, formErrorf("invalid form submission: %v", err)
	}

	productID, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("product_id")), 10, 64)
	if err != nil {
		return nil, formErrorf("product_id must be a whole number")
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("quantity")))
	if err != nil {
		return nil, formErrorf("quantity must be a whole number")
	}

	form := &orderForm{ProductID: productID, Quantity: quantity}

	if err := validate.Struct(form); err != nil {
		return nil, formatValidationErrors(err)
	}

	return form, nil
}

func formatValidationErrors(err error) *FormError {
	if errs, ok := err.(validator.ValidationErrors); ok {
		parts := make([]string, 0, len(errs))
		for _, fieldErr := range errs {
			parts = append(parts, fieldErr.Field()+" "+validationMessage(fieldErr))
		}
		return &FormError{Message: strings.Join(parts, "; ")}
	}
	return &FormError{Message: err.Error()}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return "is invalid"
}
