package roster

import (
	"testing"

	"github.com/lox/mavensledger/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRoster(t *testing.T) {
	r := New([]config.PlayerConfig{
		{ScreenName: "zed", Alias: "Zed"},
		{ScreenName: "MyScreenName", Alias: "me", Email: "me@mydomain.tld"},
		{ScreenName: "alice", Alias: "Al"},
	})

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, "me", r.Alias("MyScreenName"))
	assert.Equal(t, "Stranger", r.Alias("Stranger"))

	email, ok := r.Email("MyScreenName")
	assert.True(t, ok)
	assert.Equal(t, "me@mydomain.tld", email)
	_, ok = r.Email("alice")
	assert.False(t, ok)

	var names []string
	for _, e := range r.Entries() {
		names = append(names, e.ScreenName)
	}
	assert.Equal(t, []string{"alice", "MyScreenName", "zed"}, names)
}
