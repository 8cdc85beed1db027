package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func codes(errs []error) []string {
	var result []string
	for _, err := range errs {
		result = append(result, err.(*ValidationError).Code)
	}
	return result
}

func TestValidate_Clean(t *testing.T) {
	root := &Namespace{Name: "api"}
	c := root.AddClass(&Class{Name: "Widget"})
	c.AddProperty(&Property{Name: "name", Type: Primitive("string")})
	c.AddMethod(&Method{Name: "get", Kind: MethodRequestExecutor, HTTPMethod: HTTPGet, ReturnType: Ref(c)})

	assert.Empty(t, root.Validate())
}

func TestValidate_Codes(t *testing.T) {
	tests := []struct {
		name  string
		build func(root *Namespace)
		want  []string
	}{
		{
			name: "duplicate type",
			build: func(root *Namespace) {
				root.AddClass(&Class{Name: "Widget"})
				root.AddEnum(&Enum{Name: "Widget"})
			},
			want: []string{"duplicate_type"},
		},
		{
			name: "dangling class",
			build: func(root *Namespace) {
				root.Classes = append(root.Classes, &Class{Name: "Orphan"})
			},
			want: []string{"dangling_parent"},
		},
		{
			name: "dangling namespace",
			build: func(root *Namespace) {
				root.Namespaces = append(root.Namespaces, &Namespace{Name: "api.lost"})
			},
			want: []string{"dangling_parent"},
		},
		{
			name: "missing return type and http method",
			build: func(root *Namespace) {
				c := root.AddClass(&Class{Name: "WidgetsRequestBuilder"})
				c.AddMethod(&Method{Name: "get", Kind: MethodRequestExecutor})
			},
			want: []string{"missing_return_type", "missing_http_method"},
		},
		{
			name: "missing index parameter",
			build: func(root *Namespace) {
				c := root.AddClass(&Class{Name: "WidgetsRequestBuilder"})
				c.SetIndexer(&Indexer{Name: "byId"})
			},
			want: []string{"missing_index_parameter"},
		},
		{
			name: "discriminator",
			build: func(root *Namespace) {
				cat := root.AddClass(&Class{Name: "Cat"})
				root.AddClass(&Class{Name: "Pet", Discriminator: DiscriminatorInfo{
					Strategy: StrategyUnion,
					Mappings: []DiscriminatorMapping{
						{Key: "cat", Type: Ref(cat)},
						{Key: "CAT", Type: Ref(cat)},
						{Key: "dog"},
					},
				}})
			},
			want: []string{"missing_discriminator_property", "duplicate_discriminator_key", "missing_mapping_type"},
		},
		{
			name: "composed generic",
			build: func(root *Namespace) {
				c := root.AddClass(&Class{Name: "Widget"})
				c.AddProperty(&Property{Name: "parts", Type: &TypeRef{
					Name:     "Map",
					Generics: []*TypeRef{{Name: "either", Composed: ComposedIntersection}},
				}})
			},
			want: []string{"composed_type"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := &Namespace{Name: "api"}
			tt.build(root)
			assert.Equal(t, tt.want, codes(root.Validate()))
		})
	}
}
