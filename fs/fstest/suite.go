// Package fstest provides a conformance test suite for filesystem providers
// used by testdirs.
//
// The suite checks the core.FS contract together with the optional
// capabilities the tree codec relies on (MetadataFS, SymlinkFS, LinkFS and
// ChrootFS), and finishes with an end-to-end pass that materializes, scans
// and renders a tree through the provider. Optional capabilities a provider
// does not implement are skipped.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
//
// Every path used by the suite is relative, so newFS must return a fresh,
// empty filesystem whose working root is writable.
package fstest

import (
	"slices"
	"testing"

	"github.com/jmgilman/go/testdirs/fs/core"
)

// FSTestConfig configures the test suite to match filesystem behavior
// characteristics.
type FSTestConfig struct {
	// EnforcesModes indicates the provider stores the permission bits given
	// to Chmod and reports them back from Stat.
	EnforcesModes bool

	// HardLinks indicates the provider implements core.LinkFS with real hard
	// links rather than reporting core.ErrUnsupported.
	HardLinks bool

	// SkipTests lists specific test names to skip.
	// Format: "Group/SubTest" (e.g., "SymlinkFS/Dangling").
	SkipTests []string
}

// LocalTestConfig returns configuration for disk-backed providers.
func LocalTestConfig() FSTestConfig {
	return FSTestConfig{
		EnforcesModes: true,
		HardLinks:     true,
	}
}

// MemoryTestConfig returns configuration for in-memory providers.
func MemoryTestConfig() FSTestConfig {
	return FSTestConfig{}
}

func (c FSTestConfig) skip(t *testing.T, name string) {
	t.Helper()
	if slices.Contains(c.SkipTests, name) {
		t.Skip("Skipped by provider configuration")
	}
}

// TestSuite runs all applicable conformance tests against a filesystem.
// The newFS function should return a fresh, empty filesystem for each group.
// Uses LocalTestConfig() by default.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, LocalTestConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.FS, FSTestConfig)
	}{
		{"ReadFS", TestReadFSWithConfig},
		{"WriteFS", TestWriteFSWithConfig},
		{"ManageFS", TestManageFSWithConfig},
		{"WalkFS", TestWalkFSWithConfig},
		{"ChrootFS", TestChrootFSWithConfig},
		{"MetadataFS", TestMetadataFSWithConfig},
		{"SymlinkFS", TestSymlinkFSWithConfig},
		{"LinkFS", TestLinkFSWithConfig},
		{"TreeCodec", TestTreeCodecWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			config.skip(t, g.name)
			g.run(t, newFS(), config)
		})
	}
}
