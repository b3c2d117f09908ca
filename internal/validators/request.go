package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names checked by [RequestValidator]. They double as JSON keys and as
// the field scoping arguments of Validate.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldStock       = "stock"
	FieldUserID      = "userId"
	FieldMinPrice    = "minPrice"
	FieldMaxPrice    = "maxPrice"
)

// Bounds enforced on request fields. Passwords are capped at the bcrypt input
// limit; the price cap matches a NUMERIC(10,2) column; stock fits INTEGER.
const (
	PasswordMinLen    = 6
	PasswordMaxLen    = 72
	UserNameMinLen    = 2
	UserNameMaxLen    = 100
	ProductNameMinLen = 2
	ProductNameMaxLen = 200
	PriceMax          = 99999999.99
	StockMax          = math.MaxInt32
)

// Raw request bodies as decoded by json.Decoder with UseNumber, so numbers
// arrive as json.Number. Each named type selects its rule set.
type (
	RegisterBody      map[string]any
	LoginBody         map[string]any
	CreateProductBody map[string]any
	UpdateProductBody map[string]any
)

// ProductQuery holds the query string of GET /api/products.
type ProductQuery url.Values

// RequestValidator implements [Validator] for the API's request bodies and
// query strings. Field format rules are delegated to go-playground/validator.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate dispatches validation to the rule set of obj's type.
//
// Supported types: RegisterBody, LoginBody, CreateProductBody,
// UpdateProductBody and ProductQuery. Returns ErrUnsupportedType for anything
// else, ErrUnknownField for a scoping argument that is not a known field, and
// a *ValidationErrors listing every violated field otherwise.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case RegisterBody:
		return v.validateRegister(ctx, value, fields...)
	case LoginBody:
		return v.validateLogin(ctx, value, fields...)
	case CreateProductBody:
		return v.validateCreateProduct(ctx, value, fields...)
	case UpdateProductBody:
		return v.validateUpdateProduct(ctx, value, fields...)
	case ProductQuery:
		return v.validateProductQuery(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(ctx context.Context, body RegisterBody, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	errs := &ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			email, ok := body[FieldEmail].(string)
			email = strings.TrimSpace(email)
			if !ok || !strings.Contains(email, "@") || v.validate.VarCtx(ctx, email, "required,email,max=255") != nil {
				errs.add(FieldEmail, MsgEmailInvalid)
			}
		case FieldPassword:
			password, ok := body[FieldPassword].(string)
			switch {
			case !ok || len(password) < PasswordMinLen:
				errs.add(FieldPassword, MsgPasswordLength)
			case len(password) > PasswordMaxLen:
				errs.add(FieldPassword, MsgPasswordTooLong)
			}
		case FieldName:
			v.checkName(ctx, errs, body[FieldName], UserNameMinLen, UserNameMaxLen)
		default:
			return ErrUnknownField
		}
	}

	return errs.errOrNil()
}

func (v *RequestValidator) validateLogin(_ context.Context, body LoginBody, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	errs := &ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if s, ok := body[FieldEmail].(string); !ok || s == "" {
				errs.add(FieldEmail, MsgEmailRequired)
			}
		case FieldPassword:
			if s, ok := body[FieldPassword].(string); !ok || s == "" {
				errs.add(FieldPassword, MsgPasswordRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.errOrNil()
}

func (v *RequestValidator) validateCreateProduct(ctx context.Context, body CreateProductBody, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldPrice, FieldStock}
	}

	errs := &ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			v.checkName(ctx, errs, body[FieldName], ProductNameMinLen, ProductNameMaxLen)
		case FieldDescription:
			if raw, present := body[FieldDescription]; present {
				checkDescription(errs, raw)
			}
		case FieldPrice:
			v.checkPrice(ctx, errs, body[FieldPrice])
		case FieldStock:
			// null stock falls back to the default like an omitted one
			if raw := body[FieldStock]; raw != nil {
				v.checkStock(ctx, errs, raw)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.errOrNil()
}

// validateUpdateProduct checks only the fields present in body; at least one
// updatable field is required.
func (v *RequestValidator) validateUpdateProduct(ctx context.Context, body UpdateProductBody, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldPrice, FieldStock}
	}

	errs := &ValidationErrors{}
	present := 0
	for _, f := range fields {
		raw, ok := body[f]
		if ok {
			present++
		}

		switch f {
		case FieldName:
			if ok {
				v.checkName(ctx, errs, raw, ProductNameMinLen, ProductNameMaxLen)
			}
		case FieldDescription:
			if ok {
				checkDescription(errs, raw)
			}
		case FieldPrice:
			if ok {
				v.checkPrice(ctx, errs, raw)
			}
		case FieldStock:
			if ok {
				v.checkStock(ctx, errs, raw)
			}
		default:
			return ErrUnknownField
		}
	}

	if present == 0 {
		errs.add("body", MsgNoFieldsToUpdate)
	}

	return errs.errOrNil()
}

func (v *RequestValidator) validateProductQuery(ctx context.Context, query ProductQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldMinPrice, FieldMaxPrice}
	}

	values := url.Values(query)
	errs := &ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldUserID:
		case FieldMinPrice, FieldMaxPrice:
			raw := values.Get(f)
			if raw == "" {
				continue
			}
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || v.validate.VarCtx(ctx, n, "gte=0") != nil {
				errs.add(f, fmt.Sprintf("%s %s", f, MsgNotANumber))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.errOrNil()
}

func (v *RequestValidator) checkName(ctx context.Context, errs *ValidationErrors, raw any, minLen, maxLen int) {
	name, ok := raw.(string)
	if !ok {
		errs.add(FieldName, MsgNameLength)
		return
	}

	name = strings.TrimSpace(name)
	if v.validate.VarCtx(ctx, name, fmt.Sprintf("min=%d", minLen)) != nil {
		errs.add(FieldName, MsgNameLength)
		return
	}
	if v.validate.VarCtx(ctx, name, fmt.Sprintf("max=%d", maxLen)) != nil {
		errs.add(FieldName, fmt.Sprintf("Name must be at most %d characters", maxLen))
	}
}

func (v *RequestValidator) checkPrice(ctx context.Context, errs *ValidationErrors, raw any) {
	num, ok := raw.(json.Number)
	if !ok {
		errs.add(FieldPrice, MsgPriceInvalid)
		return
	}

	price, err := num.Float64()
	if err != nil || math.IsNaN(price) || v.validate.VarCtx(ctx, price, fmt.Sprintf("gte=0,lte=%.2f", PriceMax)) != nil {
		errs.add(FieldPrice, MsgPriceInvalid)
		return
	}
	if math.Round(price*100)/100 != price {
		errs.add(FieldPrice, MsgPricePrecision)
	}
}

func (v *RequestValidator) checkStock(ctx context.Context, errs *ValidationErrors, raw any) {
	num, ok := raw.(json.Number)
	if !ok {
		errs.add(FieldStock, MsgStockInvalid)
		return
	}

	stock, err := num.Int64()
	if err != nil || v.validate.VarCtx(ctx, stock, fmt.Sprintf("gte=0,lte=%d", StockMax)) != nil {
		errs.add(FieldStock, MsgStockInvalid)
	}
}

func checkDescription(errs *ValidationErrors, raw any) {
	if raw == nil {
		return
	}
	if _, ok := raw.(string); !ok {
		errs.add(FieldDescription, MsgDescriptionString)
	}
}
