//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortDialogCyclesOptions(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.StartStubSteam(defaultLibrary()...)

	err := tf.StartApp(fixtureVanity)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Loaded 4 games"), "Library should load")

	// Open the sort dialog; the default sort is by name
	tf.SendKeys(KeySort)
	require.True(t, tf.SeePlain("Sort by: Name"), "Sort dialog should show the current option")

	// Cycle to the next option; the list re-sorts immediately
	tf.SendKeys(KeyDown)
	require.True(t, tf.SeePlain("Sort by: Playtime"), "Next option should be shown")

	// Accept and return to the list
	tf.SendEnter()
	require.True(t, tf.SeePlain("steamgrip"), "Should be back on the main view")
}

func TestSortDialogCancelKeepsOrder(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.StartStubSteam(defaultLibrary()...)

	err := tf.StartApp(fixtureVanity)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Loaded 4 games"), "Library should load")

	tf.SendKeys(KeySort)
	require.True(t, tf.SeePlain("Sort by: Name"), "Sort dialog should open")
	tf.SendKeys(KeyDown)
	require.True(t, tf.SeePlain("Sort by: Playtime"), "Option should move")

	// Esc restores the original sort and closes the dialog
	tf.SendEsc()
	require.True(t, tf.SeePlain("steamgrip"), "Should be back on the main view")
}
