package source

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/folio/internal/content"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

type documentRecord struct {
	ID       string          `yaml:"id" json:"id" validate:"omitempty,slug"`
	Title    string          `yaml:"title" json:"title"`
	Slug     string          `yaml:"slug" json:"slug" validate:"omitempty,slug"`
	Excerpt  string          `yaml:"excerpt" json:"excerpt"`
	Kind     string          `yaml:"kind" json:"kind" validate:"omitempty,oneof=post article prompt"`
	Sections []sectionRecord `yaml:"sections" json:"sections" validate:"required,dive"`
}

type sectionRecord struct {
	Type       string `yaml:"type" json:"type" validate:"required"`
	Content    string `yaml:"content" json:"content"`
	Title      string `yaml:"title" json:"title"`
	Icon       string `yaml:"icon" json:"icon" validate:"omitempty,max=64"`
	Quote      string `yaml:"quote" json:"quote"`
	StepNumber int    `yaml:"stepNumber" json:"stepNumber" validate:"gte=0"`
}

func (r documentRecord) document() content.Document {
	doc := content.Document{
		ID:       r.ID,
		Title:    r.Title,
		Slug:     r.Slug,
		Excerpt:  r.Excerpt,
		Kind:     content.Kind(r.Kind),
		Sections: make([]content.Section, 0, len(r.Sections)),
	}
	for _, s := range r.Sections {
		doc.Sections = append(doc.Sections, s.section())
	}
	return doc
}

func (r sectionRecord) section() content.Section {
	return content.Section{
		Type:       content.SectionType(r.Type),
		Content:    r.Content,
		Title:      r.Title,
		Icon:       r.Icon,
		Quote:      r.Quote,
		StepNumber: r.StepNumber,
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)
)

// validatorInstance returns the shared validator. Section types are only
// required: the renderer falls back for unknown ones and Lint reports them.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func validateRecord(rec *documentRecord) error {
	return convertValidationError(validatorInstance().Struct(rec))
}

// convertValidationError normalizes validator errors into folio validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return folioerrors.NewValidationError(field, msg, err)
	}

	return folioerrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace:
// "documentRecord.sections[1].type" becomes "sections[1].type".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
