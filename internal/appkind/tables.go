package appkind

import "regexp"

// BrowserBundles maps bundle-identifier substrings to browser families.
// Bundle ids are authoritative: a match here classifies at 0.95 regardless
// of display name. Chromium derivatives map to the Chrome family since they
// share its DOM-to-AX mapping.
var BrowserBundles = map[string]BrowserFamily{
	"com.google.chrome":                  Chrome,
	"com.google.chrome.canary":           Chrome,
	"org.chromium.chromium":              Chrome,
	"com.brave.browser":                  Chrome,
	"com.vivaldi.vivaldi":                Chrome,
	"com.apple.safari":                   Safari,
	"com.apple.safaritechnologypreview":  Safari,
	"org.mozilla.firefox":                Firefox,
	"org.mozilla.firefoxdeveloperedition": Firefox,
	"com.microsoft.edgemac":              Edge,
}

// PDFBundles lists bundle-identifier substrings of PDF readers.
var PDFBundles = []string{
	"com.adobe.acrobat",
	"com.adobe.reader",
	"com.apple.preview",
	"com.readdle.pdfexpert-mac",
	"net.sourceforge.skim-app.skim",
	"com.smileonmymac.pdfpenpro",
}

// SystemBundles lists bundle-identifier substrings of user-facing macOS
// system applications.
var SystemBundles = []string{
	"com.apple.finder",
	"com.apple.systempreferences",
	"com.apple.mail",
	"com.apple.terminal",
	"com.apple.textedit",
	"com.apple.notes",
	"com.apple.messageshelper",
	"com.apple.mobilesms", // Messages
	"com.apple.calculator",
	"com.apple.music",
	"com.apple.photos",
	"com.apple.calendar",
	"com.apple.ical",
}

// ElectronBundles lists bundle-identifier substrings of known Electron apps.
var ElectronBundles = []string{
	"com.tinyspeck.slackmacgap",
	"com.hnc.discord",
	"com.microsoft.vscode",
	"com.spotify.client",
	"notion.id",
	"com.figma.desktop",
	"com.postmanlabs.mac",
	"md.obsidian",
	"com.github.atom",
}

// JavaBundles lists bundle-identifier substrings of known Java apps.
var JavaBundles = []string{
	"com.jetbrains.intellij",
	"com.jetbrains.pycharm",
	"com.jetbrains.webstorm",
	"org.eclipse.platform.ide",
	"org.netbeans.ide",
	"com.dbeaver.product",
	"com.install4j",
}

// browserNameHints are the display-name substrings that identify a browser
// and resolve its family.
var browserNameHints = []struct {
	hint   string
	family BrowserFamily
}{
	{"chrome", Chrome},
	{"safari", Safari},
	{"firefox", Firefox},
	{"edge", Edge},
}

// pdfNameHints are display-name substrings that identify a PDF reader.
var pdfNameHints = []string{"pdf", "preview", "acrobat", "skim"}

// Name-pattern tables used when the bundle id is unknown (classifier step 1)
// and as the generic fallback (step 8). Matched in table order.
var namePatterns = []struct {
	pattern  *regexp.Regexp
	category Category
}{
	// The four mainstream browser names are deliberately absent here: they
	// are handled by the dedicated name-hint path so their confidence stays
	// distinct from the generic pattern tier.
	{regexp.MustCompile(`(?i)chromium|opera|brave|vivaldi|tor browser`), WebBrowser},
	{regexp.MustCompile(`(?i)pdf|acrobat|preview|skim`), PDFReader},
	{regexp.MustCompile(`(?i)slack|discord|visual studio code|vs ?code|spotify|notion|figma|obsidian|postman`), ElectronApp},
	{regexp.MustCompile(`(?i)intellij|pycharm|webstorm|eclipse|netbeans|dbeaver|jetbrains`), JavaApp},
}
