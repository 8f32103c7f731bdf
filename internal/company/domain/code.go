package domain

import (
	"strings"

	"github.com/gosimple/slug"
)

// CodeFromName derives the company code from its display name: transliterated,
// lowercased, with everything except letters and digits removed.
//
//	CodeFromName("Peach Pie Co") == "peachpieco"
func CodeFromName(name string) (string, error) {
	code := strings.ReplaceAll(slug.Make(name), "-", "")
	if code == "" {
		return "", ErrInvalidName
	}
	return code, nil
}
