package service

import "strings"

var slugReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u",
	"Ü", "u", "Ñ", "n",
)

// slugify derives a URL slug from a display name: lowercase ASCII with
// hyphens, Spanish accents folded ("Jamón Crudo" -> "jamon-crudo").
func slugify(name string) string {
	name = slugReplacer.Replace(strings.TrimSpace(name))
	name = strings.ToLower(name)

	var b strings.Builder
	lastHyphen := true
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
