package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstTokenResolver_Resolve(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want Location
	}{
		{
			name: "token and nested path",
			env:  "branchA/dir/file",
			want: Location{Token: "branchA", Path: "dir/file"},
		},
		{
			name: "token only",
			env:  "branchA",
			want: Location{Token: "branchA", Path: ""},
		},
		{
			name: "token and single path segment",
			env:  "us-west-1/service",
			want: Location{Token: "us-west-1", Path: "service"},
		},
		{
			name: "empty name",
			env:  "",
			want: Location{},
		},
		{
			name: "leading delimiter yields empty token",
			env:  "/dir/file",
			want: Location{Token: "", Path: "dir/file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstTokenResolver{}.Resolve(New(tt.env))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSingleLocationResolver_Resolve(t *testing.T) {
	r := SingleLocationResolver{Token: "master"}

	got, err := r.Resolve(New("prod/service"))

	require.NoError(t, err)
	assert.Equal(t, Location{Token: "master", Path: "prod/service"}, got)
}

func TestSingleLocationResolver_Resolve_DefaultEnvironment(t *testing.T) {
	r := SingleLocationResolver{Token: "master"}

	got, err := r.Resolve(Default())

	require.NoError(t, err)
	assert.Equal(t, Location{Token: "master", Path: ""}, got)
}

func TestEnvironment_Name(t *testing.T) {
	assert.Equal(t, "prod", New("prod").Name())
	assert.Empty(t, Default().Name())
}
