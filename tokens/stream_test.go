package tokens

import "testing"

func TestStream(t *testing.T) {
	stream, err := Tokenize("x := 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if stream.Len() != 4 {
		t.Fatalf("got %d", stream.Len())
	}
	if str := stream.String(); str != `['x', ':=', '1', '\n']` {
		t.Fatalf("got %s", str)
	}
	for range 4 {
		if stream.Done() {
			t.Fatal("done too early")
		}
		stream.Consume()
	}
	if !stream.Done() {
		t.Fatal("should be done")
	}
	if _, ok := stream.Current().(EndOfInput); !ok {
		t.Fatalf("got %v", stream.Current())
	}
	// consuming past the end is a no-op
	stream.Consume()
	if _, ok := stream.Current().(EndOfInput); !ok {
		t.Fatalf("got %v", stream.Current())
	}
	if str := stream.Current().String(); str != "EOF" {
		t.Fatalf("got %s", str)
	}
}

func TestStreamTokensCopy(t *testing.T) {
	stream := NewStream(
		[]Token{Identifier{"a"}},
		[]Pos{{1, 1}},
		Pos{1, 2},
	)
	list := stream.Tokens()
	list[0] = Newline{}
	if _, ok := stream.Current().(Identifier); !ok {
		t.Fatalf("got %v", stream.Current())
	}
}

func TestEmptyStream(t *testing.T) {
	stream, err := Tokenize("   ")
	if err != nil {
		t.Fatal(err)
	}
	if !stream.Done() {
		t.Fatal("should be done")
	}
	if str := stream.String(); str != "[]" {
		t.Fatalf("got %s", str)
	}
	if pos := stream.Pos(); pos != (Pos{1, 4}) {
		t.Fatalf("got %v", pos)
	}
}
