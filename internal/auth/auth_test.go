package auth

import "testing"

func TestIdentity_SplitName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want [2]string
	}{
		{"first and last", "Ada Lovelace", [2]string{"Ada", "Lovelace"}},
		{"single word", "Ada", [2]string{"Ada", ""}},
		{"middle names stay in last", "Ada King Lovelace", [2]string{"Ada", "King Lovelace"}},
		{"surrounding spaces", "  Ada Lovelace ", [2]string{"Ada", "Lovelace"}},
		{"empty", "", [2]string{"", ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := Identity{Name: tc.in}.SplitName()
			if first != tc.want[0] || last != tc.want[1] {
				t.Fatalf("got (%q,%q), want (%q,%q)", first, last, tc.want[0], tc.want[1])
			}
		})
	}
}

func TestProvider_LoginLogout(t *testing.T) {
	p := NewProvider()

	if _, ok := p.Current(); ok {
		t.Fatal("fresh provider should have no identity")
	}

	id := p.Login("Ada Lovelace", "ada@example.com")
	if id.ID == "" {
		t.Fatal("login should assign an id")
	}

	cur, ok := p.Current()
	if !ok || cur.Email != "ada@example.com" {
		t.Fatalf("current: %+v ok=%v", cur, ok)
	}

	p.Logout()
	if _, ok := p.Current(); ok {
		t.Fatal("identity should be gone after logout")
	}
}
