// Package i18n holds the localized message catalog and the request locale carried in a context.
package i18n

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// DefaultLocale is used when a request carries no supported locale.
const DefaultLocale = "en"

// Message keys.
const (
	KeyRequired       = "validation.required"
	KeyMaxLength      = "validation.max"
	KeyBetween        = "validation.between"
	KeyScale          = "validation.scale"
	KeyUUID           = "validation.uuid"
	KeyCategoryExists = "validation.category_exists"
	KeyInvalid        = "validation.invalid"
	KeyCategoryInUse  = "category.has_carpets"
)

var messages = map[string]map[string]string{
	"en": {
		KeyRequired:       "{0} is required",
		KeyMaxLength:      "{0} cannot exceed {1} characters",
		KeyBetween:        "{0} must be between {1} and {2}",
		KeyScale:          "{0} must have at most {1} decimal places",
		KeyUUID:           "{0} must be a valid identifier",
		KeyCategoryExists: "{0} does not reference an existing category",
		KeyInvalid:        "{0} is invalid",
		KeyCategoryInUse:  "Cannot delete category that contains carpets. Please remove or reassign all carpets first.",
	},
	"ar": {
		KeyRequired:       "{0} مطلوب",
		KeyMaxLength:      "{0} يجب ألا يتجاوز {1} حرفًا",
		KeyBetween:        "{0} يجب أن يكون بين {1} و {2}",
		KeyScale:          "{0} يجب ألا يحتوي على أكثر من {1} منازل عشرية",
		KeyUUID:           "{0} يجب أن يكون معرفًا صالحًا",
		KeyCategoryExists: "{0} لا يشير إلى فئة موجودة",
		KeyInvalid:        "{0} غير صالح",
		KeyCategoryInUse:  "لا يمكن حذف فئة تحتوي على سجاد. يرجى إزالة أو نقل كل السجاد أولاً.",

		"field.ID":                  "المعرف",
		"field.Name":                "الاسم",
		"field.Description":         "الوصف",
		"field.Length":              "الطول",
		"field.Width":               "العرض",
		"field.Color":               "اللون",
		"field.Material":            "الخامة",
		"field.PricePerSquareMeter": "سعر المتر المربع",
		"field.StockQuantity":       "الكمية في المخزون",
		"field.CategoryID":          "الفئة",
	},
}

// Catalog resolves message keys to localized text.
type Catalog struct {
	uni *ut.UniversalTranslator
}

// NewCatalog loads the built-in English and Arabic messages.
func NewCatalog() (*Catalog, error) {
	english := en.New()
	uni := ut.New(english, english, ar.New())

	for locale, entries := range messages {
		trans, found := uni.GetTranslator(locale)
		if !found {
			return nil, fmt.Errorf("locale %s is not supported", locale)
		}
		for key, text := range entries {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("failed to add %s message %q: %w", locale, key, err)
			}
		}
	}

	return &Catalog{uni: uni}, nil
}

// Supports reports whether the catalog has messages for locale.
func (c *Catalog) Supports(locale string) bool {
	_, ok := messages[locale]
	return ok
}

// T returns the message for key in locale. When the key is missing the fallback
// literal is used with the same {n} placeholders.
func (c *Catalog) T(locale, key, fallback string, params ...string) string {
	trans, _ := c.uni.GetTranslator(locale)
	if msg, err := trans.T(key, params...); err == nil {
		return msg
	}
	if locale != DefaultLocale {
		if trans, found := c.uni.GetTranslator(DefaultLocale); found {
			if msg, err := trans.T(key, params...); err == nil {
				return msg
			}
		}
	}
	return format(fallback, params)
}

// Field returns the display label of a struct field in locale.
func (c *Catalog) Field(locale, name string) string {
	return c.T(locale, "field."+name, name)
}

func format(text string, params []string) string {
	for i, p := range params {
		text = strings.ReplaceAll(text, fmt.Sprintf("{%d}", i), p)
	}
	return text
}

type localeKey struct{}

// WithLocale returns a copy of ctx carrying locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleFromContext returns the locale stored in ctx, or DefaultLocale.
func LocaleFromContext(ctx context.Context) string {
	if locale, ok := ctx.Value(localeKey{}).(string); ok && locale != "" {
		return locale
	}
	return DefaultLocale
}
