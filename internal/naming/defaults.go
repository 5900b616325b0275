package naming

// Recognized extensions: program extensions first, then installer and
// archive extensions not already listed.
var defaultExtensions = []string{
	"air", "swf", "jar",
	"sh", "py", "pl",
	"exe", "bat", "cmd", "pif",
	"bin",
	"desktop",
	"zip", "rar",
	"tar", "gz", "tgz", "bz2", "tbz2", "xz", "txz",
	"run",
	"deb", "rpm",
}

const (
	// DefaultWordBoundaryChars are the characters after which TitlecaseUp
	// starts a new word.
	DefaultWordBoundaryChars = ". _-"
	// DefaultSubtitlePattern finds a number followed by a capitalized word,
	// as in "Trine 2 Complete Story".
	DefaultSubtitlePattern = `(\p{Nd})\s+(\p{Lu})`
	// DefaultSubtitleReplacement turns a DefaultSubtitlePattern match into
	// "2: Complete".
	DefaultSubtitleReplacement = "${1}: ${2}"
	// DefaultVersionPattern matches version numbers and platform or store
	// suffixes such as "_1.10_LINUX" or "-linux32". It is greedy enough
	// to eat "lin" inside ordinary words, so it is opt-in.
	DefaultVersionPattern = `(?i)[ _-]*(?:[ _-](?:alpha|beta|v|build[ _-]?)?\d+(?:\.\d+|[a-z])*(?:(?:a|b|alpha|beta|rc|build)\d+)?|(?:alpha|beta)\D|lin(?:ux)?(?:32|64|\b)|linux?(?:32|64)?|x64|standalone|humble|(?:[ _-]|\b)gog(?:[ _-]|\b))`
	// DefaultShortNameGraphemes is the length below which a name is assumed
	// to be an acronym.
	DefaultShortNameGraphemes = 3
)

var defaultOverrides = []OverrideSpec{
	{Pattern: `\b(Can|Didn|Doesn|Don|Isn|Wasn|Won|Wouldn|Couldn|Shouldn|Aren|Weren|Haven|Hasn|Ain) T\b`, Replacement: "${1}'t"},
	{Pattern: `\b(It|He|She|That|What|There|Here|Let|Who) S\b`, Replacement: "${1}'s"},
	{Pattern: `\b(Ma?c) ([A-Z][a-z])`, Replacement: "${1}${2}"},
	{Pattern: `\bDb\b`, Replacement: "DB"},
	{Pattern: `\bDjgpp\b`, Replacement: "DJGPP"},
	{Pattern: `\bIN Vedit\b`, Replacement: "INVedit"},
	{Pattern: `\bUx\b`, Replacement: "UX"},
	{Pattern: `([a-z])iii\b`, Replacement: "${1} III"},
	{Pattern: `xwb\b`, Replacement: "XWB"},
	{Pattern: `^Star Wars ([A-Z])`, Replacement: "Star Wars: ${1}"},
	{Pattern: `\bScumm VM\b`, Replacement: "ScummVM"},
	{Pattern: `\bDOS Box\b`, Replacement: "DOSBox"},
	{Pattern: `^YS$`, Replacement: "Ys"},
}

// DefaultExtensions returns a copy of the built-in recognized extensions.
func DefaultExtensions() []string {
	return append([]string(nil), defaultExtensions...)
}

// DefaultOverrides returns a copy of the built-in override table.
func DefaultOverrides() []OverrideSpec {
	return append([]OverrideSpec(nil), defaultOverrides...)
}

// DefaultTables returns the built-in configuration.
func DefaultTables() Tables {
	return Tables{
		Extensions:         DefaultExtensions(),
		WordBoundaryChars:  DefaultWordBoundaryChars,
		SubtitlePattern:    DefaultSubtitlePattern,
		ShortNameGraphemes: DefaultShortNameGraphemes,
		Overrides:          DefaultOverrides(),
	}
}
