package content

// Icon selects one glyph from the fixed set the site can draw.
type Icon int

// Available icons. IconNone draws nothing.
const (
	IconNone Icon = iota
	IconBook
	IconRocket
	IconTerminal
	IconCode
	IconPlug
	IconShield
	IconChart
	IconUsers
	IconServer
	IconLifebuoy
	IconScale
	IconLock
	IconFile
	IconCookie
	IconAlert
)

var iconNames = [...]string{
	IconNone:     "none",
	IconBook:     "book",
	IconRocket:   "rocket",
	IconTerminal: "terminal",
	IconCode:     "code",
	IconPlug:     "plug",
	IconShield:   "shield",
	IconChart:    "chart",
	IconUsers:    "users",
	IconServer:   "server",
	IconLifebuoy: "lifebuoy",
	IconScale:    "scale",
	IconLock:     "lock",
	IconFile:     "file",
	IconCookie:   "cookie",
	IconAlert:    "alert",
}

// Icons returns every drawable icon, excluding IconNone.
func Icons() []Icon {
	r := make([]Icon, 0, len(iconNames)-1)
	for i := IconBook; int(i) < len(iconNames); i++ {
		r = append(r, i)
	}
	return r
}

// String returns the icon name used in CSS classes.
func (i Icon) String() string {
	if !i.Valid() {
		return "none"
	}
	return iconNames[i]
}

// Valid reports whether i is one of the declared icons.
func (i Icon) Valid() bool {
	return i >= 0 && int(i) < len(iconNames)
}
