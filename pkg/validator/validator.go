package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate = validator.New()
	// sanitizer must be usable before Init runs: services call SanitizeHTML
	// directly.
	sanitizer = bluemonday.UGCPolicy()
)

func Init() {
	registerCustomValidations(validate)

	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidations(engine)
	}
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("slug", validateSlug)
	v.RegisterValidation("page_pattern", validatePagePattern)
	v.RegisterValidation("no_html", validateNoHTML)
}

func Validate(s interface{}) error {
	return validate.Struct(s)
}

// SanitizeHTML cleans user-authored markup before it reaches the public site.
func SanitizeHTML(html string) string {
	return sanitizer.Sanitize(html)
}

func SanitizeString(s string) string {
	return bluemonday.StrictPolicy().Sanitize(s)
}

func validateSlug(fl validator.FieldLevel) bool {
	slug := fl.Field().String()
	matched, _ := regexp.MatchString(`^[a-z0-9-]+$`, slug)
	return matched
}

// validatePagePattern accepts page-targeting entries: an absolute path,
// optionally ending in "/*". Interior wildcards are rejected so stored rules
// keep a single meaning if mid-path wildcards are ever introduced.
func validatePagePattern(fl validator.FieldLevel) bool {
	return ValidPagePattern(fl.Field().String())
}

var pagePatternRegex = regexp.MustCompile(`^/([a-zA-Z0-9._~-]+(/[a-zA-Z0-9._~-]+)*)?(/\*)?$`)

func ValidPagePattern(pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}
	if strings.Count(pattern, "*") > 1 {
		return false
	}
	if strings.Contains(pattern, "*") && !strings.HasSuffix(pattern, "/*") {
		return false
	}
	return pagePatternRegex.MatchString(pattern)
}

func validateNoHTML(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.Contains(value, "<") && !strings.Contains(value, ">")
}

func TrimSpaces(s string) string {
	return strings.TrimSpace(s)
}

func NormalizeSpaces(s string) string {
	space := regexp.MustCompile(`\s+`)
	return space.ReplaceAllString(s, " ")
}

func ValidateURL(url string) bool {
	urlRegex := regexp.MustCompile(`^https?://[a-zA-Z0-9\-\.]+\.[a-zA-Z]{2,}(/.*)?$`)
	return urlRegex.MatchString(url)
}
