package langtag

// alternates maps a primary language subtag to other subtags that denote the
// same (or a mutually intelligible) language under a different code. Most
// entries exist because ISO 639 retired or renamed a code and both forms
// survive in the wild.
var alternates = map[string][]string{
	"he":  {"iw"},
	"iw":  {"he"},
	"id":  {"in"},
	"in":  {"id"},
	"yi":  {"ji"},
	"ji":  {"yi"},
	"jv":  {"jw"},
	"jw":  {"jv"},
	"no":  {"nb"},
	"nb":  {"no"},
	"tl":  {"fil"},
	"fil": {"tl"},
	"ro":  {"mo"},
	"mo":  {"ro"},
}

// panics maps a primary language subtag to last-resort tags of languages
// with related heritage. These are approximations only: a reader of the
// panic language will usually get the gist. Consulted only when the
// resolver is built with panic expansion enabled.
var panics = map[string][]string{
	"da": {"nb", "nn", "no", "sv"},
	"nb": {"no", "nn", "da"},
	"nn": {"no", "nb", "da"},
	"no": {"nb", "nn", "da"},
	"sv": {"da", "nb", "no"},

	"es": {"pt", "ca", "it"},
	"pt": {"es", "gl"},
	"ca": {"es"},
	"gl": {"es", "pt"},
	"it": {"es", "fr", "pt"},
	"fr": {"it", "es"},
	"ro": {"it", "fr", "es"},

	"cs": {"sk"},
	"sk": {"cs"},
	"ru": {"uk", "be", "bg"},
	"uk": {"ru", "be"},
	"be": {"ru", "uk"},
	"bg": {"ru", "mk"},
	"mk": {"bg"},
	"hr": {"sr", "bs"},
	"sr": {"hr", "bs"},
	"bs": {"hr", "sr"},

	"hi": {"ur"},
	"ur": {"hi"},
	"id": {"ms"},
	"ms": {"id"},
	"af": {"nl"},
	"nl": {"af"},
}

// alternatesFor returns alternate tags for a canonical tag, carrying any
// region suffix across ("iw_il" -> ["he_il"]).
func alternatesFor(tag string) []string {
	base := primary(tag)
	alts, ok := alternates[base]
	if !ok {
		return nil
	}
	suffix := tag[len(base):]
	out := make([]string, 0, len(alts))
	for _, a := range alts {
		out = append(out, a+suffix)
	}
	return out
}

// panicsFor returns the panic tags for a canonical tag. Panic tags are
// whole-language approximations, so any region suffix is dropped.
func panicsFor(tag string) []string {
	return panics[primary(tag)]
}
