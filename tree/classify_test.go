package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmgilman/go/testdirs/tree"
)

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name      string
		value     tree.Content
		primitive bool
		dir       bool
		link      bool
		symlink   bool
		meta      bool
	}{
		{name: "nil", value: nil},
		{name: "nil tree", value: (*tree.Tree)(nil)},
		{name: "zero link", value: tree.Link{}},
		{name: "zero symlink", value: tree.Symlink{}},
		{name: "zero meta", value: tree.Meta{}},
		{name: "empty tree", value: tree.New(), dir: true},
		{name: "text", value: tree.Text("x"), primitive: true},
		{name: "empty text", value: tree.Text(""), primitive: true},
		{name: "bytes", value: tree.Bytes(nil), primitive: true},
		{name: "int", value: tree.Int(0), primitive: true},
		{name: "float", value: tree.Float(0), primitive: true},
		{name: "bool", value: tree.Bool(false), primitive: true},
		{name: "null", value: tree.Null{}, primitive: true},
		{name: "undefined", value: tree.Undefined{}, primitive: true},
		{name: "link", value: tree.NewLink("a"), link: true},
		{name: "symlink", value: tree.NewSymlink("a"), symlink: true},
		{name: "meta", value: tree.MustWithMode(tree.Text("x"), 0o600), meta: true},
		{name: "content-shaped tree", value: tree.New().Set("content", tree.Text("x")), dir: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.primitive, tree.IsPrimitive(tt.value), "IsPrimitive")
			assert.Equal(t, tt.dir, tree.IsDir(tt.value), "IsDir")
			assert.Equal(t, tt.link, tree.IsLink(tt.value), "IsLink")
			assert.Equal(t, tt.symlink, tree.IsSymlink(tt.value), "IsSymlink")
			assert.Equal(t, tt.meta, tree.IsMeta(tt.value), "IsMeta")
		})
	}
}
