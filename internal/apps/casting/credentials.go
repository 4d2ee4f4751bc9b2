package casting

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ErrMatriculeExhausted means 99 models already share the same initial
// under the prefix, which the two-digit matricule format cannot represent.
var ErrMatriculeExhausted = errors.New("no free matricule for this initial")

// NextMatricule returns the next free matricule username of the form
// <prefix><FirstInitialUpper><seq>, with seq a two-digit counter computed
// against the usernames currently in use (e.g. "Man-PMMJ01" for "Jane").
// The caller passes the live username set so the result is unique at
// generation time.
func NextMatricule(prefix, firstName string, existing []string) (string, error) {
	initial := "X"
	for _, r := range strings.TrimSpace(firstName) {
		initial = strings.ToUpper(string(foldDiacritic(r)))
		break
	}

	stem := prefix + initial
	max := 0
	for _, username := range existing {
		if !strings.HasPrefix(username, stem) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(username, stem))
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}

	if max >= 99 {
		return "", ErrMatriculeExhausted
	}
	return fmt.Sprintf("%s%02d", stem, max+1), nil
}

// InitialPassword derives the placeholder password handed to a freshly
// promoted model: surname with diacritics, apostrophes and spaces
// stripped, lowercased, followed by the four-digit year. This is not a
// security mechanism; the admin is expected to rotate it.
func InitialPassword(lastName string, now time.Time) string {
	return stripDiacritics(lastName) + strconv.Itoa(now.Year())
}

func stripDiacritics(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if r == '\'' || r == '’' || r == ' ' || r == '-' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func foldDiacritic(r rune) rune {
	folded := []rune(stripDiacritics(string(r)))
	if len(folded) == 0 {
		return r
	}
	return folded[0]
}
