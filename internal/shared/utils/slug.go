package utils

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	slugPunct   = regexp.MustCompile(`[*+~.()'"!:@]`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// GenerateSlug turns arbitrary display text into a URL-safe slug candidate.
//
// Steps:
//  1. Fold accented characters to ASCII ("Ánh" -> "Anh")
//  2. Lowercase
//  3. Strip punctuation (* + ~ . ( ) ' " ! : @)
//  4. Collapse whitespace and remaining separators into single hyphens
//  5. Trim leading/trailing hyphens
//
// The result only contains [a-z0-9-]. Input with no alphanumeric
// characters produces ""; callers must apply their fallback (see SlugFallback).
func GenerateSlug(input string) string {
	ascii := FoldDiacritics(input)
	lower := strings.ToLower(ascii)
	stripped := slugPunct.ReplaceAllString(lower, "")
	hyphenated := strings.Join(strings.Fields(stripped), "-")
	cleaned := slugInvalid.ReplaceAllString(hyphenated, "-")
	normalized := slugHyphens.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

// SlugFallback builds a slug for titles that slugify to an empty string
// (e.g. punctuation-only input): the record kind plus the first 8 hex
// characters of the record id. Deterministic per record, never empty.
func SlugFallback(kind string, id uuid.UUID) string {
	return fmt.Sprintf("%s-%.8s", kind, strings.ReplaceAll(id.String(), "-", ""))
}

// SlugExistsFunc reports whether a slug is already taken within a record kind.
type SlugExistsFunc func(ctx context.Context, slug string) (bool, error)

// ResolveUniqueSlug finds a collision-free variant of base by appending
// an increasing numeric suffix: base, base-1, base-2, ...
//
// The check-then-insert sequence races under concurrent writers, so the
// database unique index stays the authoritative guard; callers retry the
// whole resolve+insert on a unique-violation error.
func ResolveUniqueSlug(ctx context.Context, base string, exists SlugExistsFunc) (string, error) {
	slug := base
	for counter := 1; ; counter++ {
		taken, err := exists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", slug, err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

// diacriticFolds maps groups of accented characters to their ASCII base.
// Covers Latin-1 supplement plus the Vietnamese alphabet.
var diacriticFolds = map[rune]string{
	'a': "àáâãäåāăąạảấầẩẫậắằẳẵặ",
	'c': "çćč",
	'd': "đď",
	'e': "èéêëēĕėęěẹẻẽếềểễệ",
	'i': "ìíîïĩīĭįịỉ",
	'l': "łľ",
	'n': "ñńňņ",
	'o': "òóôõöøōŏőọỏốồổỗộớờởỡợơ",
	'r': "ŕř",
	's': "śšş",
	't': "ťţ",
	'u': "ùúûüũūŭůűụủứừửữựư",
	'y': "ýÿỳỵỷỹ",
	'z': "źżž",
}

var foldTable = buildFoldTable()

func buildFoldTable() map[rune]rune {
	table := make(map[rune]rune)
	for base, accented := range diacriticFolds {
		for _, r := range accented {
			table[r] = base
			table[unicodeUpper(r)] = unicodeUpper(base)
		}
	}
	return table
}

func unicodeUpper(r rune) rune {
	return []rune(strings.ToUpper(string(r)))[0]
}

// FoldDiacritics replaces accented Latin characters with their ASCII base.
// Characters outside the fold table pass through unchanged.
func FoldDiacritics(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if base, ok := foldTable[r]; ok {
			b.WriteRune(base)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
