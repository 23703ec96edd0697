package style_test

import (
	"fmt"

	"github.com/HrX03/fluent-ui/pkg/graphics"
	"github.com/HrX03/fluent-ui/pkg/layout"
	"github.com/HrX03/fluent-ui/pkg/states"
	"github.com/HrX03/fluent-ui/pkg/style"
)

// This example shows how a property resolves differently per state.
func ExampleProperty() {
	background := style.Fixed(graphics.ColorWhite).
		When(states.Disabled, graphics.ColorBlack)

	rest, _ := background.Resolve(states.None)
	disabled, _ := background.Resolve(states.Disabled | states.Hovering)

	fmt.Printf("rest: %08X\n", uint32(rest))
	fmt.Printf("disabled: %08X\n", uint32(disabled))
	// Output:
	// rest: FFFFFFFF
	// disabled: FF000000
}

// This example shows layer precedence: the override wins per slot while
// unset slots fall through to lower layers.
func ExampleResolver() {
	defaults := &style.Style{
		BackgroundColor: style.Fixed(graphics.ColorWhite),
		Padding:         style.Fixed(layout.EdgeInsetsAll(8)),
	}
	override := &style.Style{
		BackgroundColor: style.Fixed(graphics.ColorBlue),
	}

	r := style.NewResolver(override, defaults)
	bg, _ := r.BackgroundColor(states.None)
	pad, _ := r.Padding(states.None)

	fmt.Printf("background: %08X\n", uint32(bg))
	fmt.Printf("padding: %v\n", pad.Left)
	// Output:
	// background: FF0000FF
	// padding: 8
}
