package control

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HrX03/fluent-ui/pkg/animation"
	fluenterrors "github.com/HrX03/fluent-ui/pkg/errors"
	"github.com/HrX03/fluent-ui/pkg/graphics"
	"github.com/HrX03/fluent-ui/pkg/interaction"
	"github.com/HrX03/fluent-ui/pkg/scope"
	"github.com/HrX03/fluent-ui/pkg/states"
	"github.com/HrX03/fluent-ui/pkg/style"
	dtesting "github.com/HrX03/fluent-ui/pkg/testing"
	"github.com/HrX03/fluent-ui/pkg/theme"
)

func withFakeClock(t *testing.T) *dtesting.FakeClock {
	t.Helper()
	fake := dtesting.NewFakeClock()
	prev := animation.SetClock(fake)
	t.Cleanup(func() { animation.SetClock(prev) })
	return fake
}

// themedScope returns a scope with the default light theme published.
func themedScope() *scope.Scope {
	s := scope.Root()
	theme.Publish(s, theme.DefaultLightTheme())
	return s
}

// TestNewControl_RequiresTheme verifies that a scope chain without a theme
// root fails construction immediately.
func TestNewControl_RequiresTheme(t *testing.T) {
	_, err := NewControl(Config{Scope: scope.Root()})
	require.Error(t, err)

	var ferr *fluenterrors.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, fluenterrors.KindConfig, ferr.Kind)

	_, err = NewControl(Config{})
	assert.Error(t, err, "nil scope is rejected")
}

// TestNewControl_InitialSnapshot verifies the initial resolution reflects
// enablement: a control without a tap callback starts with the disabled
// styling.
func TestNewControl_InitialSnapshot(t *testing.T) {
	withFakeClock(t)
	s := themedScope()
	data := theme.Of(s)

	enabled, err := NewControl(Config{Scope: s, Kind: theme.KindButton, OnTap: func() {}})
	require.NoError(t, err)
	defer enabled.Dispose()
	assert.Equal(t, data.Accent, enabled.Snapshot().BackgroundColor)

	disabled, err := NewControl(Config{Scope: s, Kind: theme.KindButton})
	require.NoError(t, err)
	defer disabled.Dispose()
	assert.Equal(t, data.DisabledBackground, disabled.Snapshot().BackgroundColor)
	assert.True(t, disabled.States().IsDisabled())
}

// TestControl_HoverAnimatesBackground verifies the full pipeline: a pointer
// event retargets the transition, which settles exactly on the hover
// styling.
func TestControl_HoverAnimatesBackground(t *testing.T) {
	fake := withFakeClock(t)
	s := themedScope()
	data := theme.Of(s)

	c, err := NewControl(Config{Scope: s, Kind: theme.KindButton, OnTap: func() {}})
	require.NoError(t, err)
	defer c.Dispose()

	c.Handle(interaction.Event{Kind: interaction.PointerEnter})
	assert.True(t, c.IsAnimating())

	require.True(t, dtesting.PumpUntilSettled(fake, 16*time.Millisecond))
	assert.Equal(t, data.Accent.Lighten(0.06), c.Snapshot().BackgroundColor)
	assert.Equal(t, graphics.CursorClick, c.Snapshot().Cursor)
}

// TestControl_PressScaleLifecycle verifies the press scale applies on down
// and reverts on the deferred schedule after up, with the tap delivered.
func TestControl_PressScaleLifecycle(t *testing.T) {
	fake := withFakeClock(t)
	s := themedScope()

	tapped := 0
	c, err := NewControl(Config{Scope: s, Kind: theme.KindButton, OnTap: func() { tapped++ }})
	require.NoError(t, err)
	defer c.Dispose()

	c.Handle(interaction.Event{Kind: interaction.PointerDown})
	assert.Equal(t, 0.95, c.Scale(), "button default pressed scale")

	c.Handle(interaction.Event{Kind: interaction.PointerUp})
	assert.Equal(t, 1, tapped)
	assert.Equal(t, 0.95, c.Scale())

	fake.Advance(interaction.PressScaleRevertDelay)
	animation.StepTickers()
	assert.Equal(t, 1.0, c.Scale())
}

// TestControl_OverridePrecedence verifies the override layer beats the
// scope's theme layer and the default layer.
func TestControl_OverridePrecedence(t *testing.T) {
	withFakeClock(t)
	s := themedScope()
	theme.PublishStyle(s, &style.Style{
		BackgroundColor: style.Fixed(graphics.ColorGreen),
	})

	c, err := NewControl(Config{
		Scope:    s,
		Kind:     theme.KindButton,
		OnTap:    func() {},
		Override: &style.Style{BackgroundColor: style.Fixed(graphics.ColorRed)},
	})
	require.NoError(t, err)
	defer c.Dispose()

	assert.Equal(t, graphics.ColorRed, c.Snapshot().BackgroundColor)
}

// TestControl_SetOverrideRetargets verifies swapping the override layer
// animates toward the restyled snapshot.
func TestControl_SetOverrideRetargets(t *testing.T) {
	fake := withFakeClock(t)
	s := themedScope()

	c, err := NewControl(Config{Scope: s, Kind: theme.KindButton, OnTap: func() {}})
	require.NoError(t, err)
	defer c.Dispose()

	c.SetOverride(&style.Style{BackgroundColor: style.Fixed(graphics.ColorRed)})
	require.True(t, dtesting.PumpUntilSettled(fake, 16*time.Millisecond))
	assert.Equal(t, graphics.ColorRed, c.Snapshot().BackgroundColor)
}

// TestControl_EqualSnapshotSkipsAnimation verifies that a state change
// resolving to an identical snapshot does not restart the transition.
func TestControl_EqualSnapshotSkipsAnimation(t *testing.T) {
	withFakeClock(t)
	s := themedScope()

	// An override fixing every state-dependent slot makes all state sets
	// resolve identically.
	c, err := NewControl(Config{
		Scope: s,
		Kind:  theme.KindButton,
		OnTap: func() {},
		Override: &style.Style{
			BackgroundColor: style.Fixed(graphics.ColorBlue),
			ForegroundColor: style.Fixed(graphics.ColorWhite),
			Border:          style.Fixed(graphics.BorderSide{}),
			Elevation:       style.Fixed(0.0),
			TextStyle:       style.Fixed(graphics.TextStyle{FontSize: 14}),
			Cursor:          style.Fixed(graphics.CursorClick),
		},
	})
	require.NoError(t, err)
	defer c.Dispose()

	c.Handle(interaction.Event{Kind: interaction.PointerEnter})
	assert.False(t, c.IsAnimating(), "identical resolution must not retarget")
}

// TestControl_OnRenderObservesChanges verifies the render callback fires
// with current states, snapshot and scale.
func TestControl_OnRenderObservesChanges(t *testing.T) {
	fake := withFakeClock(t)
	s := themedScope()

	renders := 0
	var lastStates states.States
	c, err := NewControl(Config{
		Scope: s,
		Kind:  theme.KindButton,
		OnTap: func() {},
		OnRender: func(st states.States, _ style.Snapshot, _ float64) {
			renders++
			lastStates = st
		},
	})
	require.NoError(t, err)
	defer c.Dispose()

	c.Handle(interaction.Event{Kind: interaction.PointerEnter})
	require.True(t, dtesting.PumpUntilSettled(fake, 16*time.Millisecond))

	assert.Greater(t, renders, 0)
	assert.True(t, lastStates.IsHovering())
}

// TestControl_DisposeStopsPipeline verifies a disposed control ignores
// events and stops animating.
func TestControl_DisposeStopsPipeline(t *testing.T) {
	withFakeClock(t)
	s := themedScope()

	c, err := NewControl(Config{Scope: s, Kind: theme.KindButton, OnTap: func() {}})
	require.NoError(t, err)

	before := c.Snapshot()
	c.Dispose()
	c.Handle(interaction.Event{Kind: interaction.PointerEnter})

	assert.Equal(t, before, c.Snapshot())
	assert.False(t, animation.HasActiveTickers())
}
