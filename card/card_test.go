package card

import "testing"

func TestCardValue(t *testing.T) {
	cases := []struct {
		c    Card
		want int
	}{
		{CardSpadeA, 11},
		{CardHeart2, 2},
		{CardClub9, 9},
		{CardDiamondT, 10},
		{CardSpadeJ, 10},
		{CardHeartQ, 10},
		{CardClubK, 10},
	}
	for _, tc := range cases {
		if got := tc.c.Value(); got != tc.want {
			t.Fatalf("%s value = %d, want %d", tc.c, got, tc.want)
		}
	}
}

func TestIsTenValue(t *testing.T) {
	if CardSpade9.IsTenValue() {
		t.Fatal("9 is not a ten-value card")
	}
	for _, c := range []Card{CardSpadeT, CardHeartJ, CardClubQ, CardDiamondK} {
		if !c.IsTenValue() {
			t.Fatalf("%s should be ten-value", c)
		}
	}
	if CardSpadeA.IsTenValue() {
		t.Fatal("ace is not a ten-value card")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Card
	}{
		{"As", CardSpadeA},
		{"Td", CardDiamondT},
		{"10h", CardHeartT},
		{"kc", CardClubK},
		{"2S", CardSpade2},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "A", "Ax", "1s", "Zd"} {
		if _, err := Parse(bad); err == nil {
			t.Fatalf("Parse(%q) should fail", bad)
		}
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("9c"); got != CardClub9 {
		t.Fatalf("MustParse(9c) = %v, want %v", got, CardClub9)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustParse should panic on a malformed string")
		}
	}()
	MustParse("??")
}

func TestPopCardOrder(t *testing.T) {
	var ds CardList
	ds.Init([]Card{CardSpadeA, CardSpade2, CardSpade3})

	if got := ds.PopCard(); got != CardSpade3 {
		t.Fatalf("PopCard = %v, want %v", got, CardSpade3)
	}
	if got := ds.Count(); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}

	ds.PopCard()
	ds.PopCard()
	if got := ds.PopCard(); got != CardInvalid {
		t.Fatalf("PopCard on empty = %v, want CardInvalid", got)
	}
}
