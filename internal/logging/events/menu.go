package events

import "github.com/atomicstack/header-menu/internal/logging"

type MenuTracer struct{}

type LayoutTracer struct{}

var (
	Menu   = MenuTracer{}
	Layout = LayoutTracer{}
)

func (MenuTracer) Build(signedIn bool, page string, sections []string) {
	logging.Trace("menu.build", map[string]interface{}{
		"signedIn": signedIn,
		"page":     page,
		"sections": sections,
	})
}

func (LayoutTracer) Classify(mobile bool, deviceType, screen string) {
	logging.Trace("layout.classify", map[string]interface{}{
		"mobile":     mobile,
		"deviceType": deviceType,
		"screen":     screen,
	})
}

func (LayoutTracer) Assemble(screen, page string, roots int) {
	logging.Trace("layout.assemble", map[string]interface{}{"screen": screen, "page": page, "roots": roots})
}

func (LayoutTracer) UnknownScreen(screen string) {
	logging.Trace("layout.unknown-screen", map[string]interface{}{"screen": screen})
}
