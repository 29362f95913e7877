package ini

import (
	"errors"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestBadSyntax(t *testing.T) {
	convey.Convey("malformed inputs fail the whole parse", t, func() {
		cases := []struct {
			name string
			src  string
		}{
			{"unterminated quote", "[s]\nk = \"abc\n"},
			{"closing bracket in value", "[s]\nk = a]b\n"},
			{"opening bracket in value", "[s]\nk = a[b\n"},
			{"equals in value", "[s]\nk = a=b\n"},
			{"equals with no key name", "= 5\n"},
			{"key without value", "[s]\nk\n"},
			{"key without equals", "[s]\nk v\n"},
			{"missing value", "[s]\nk =\n"},
			{"junk after quoted value", "[s]\nk = \"v\" x\n"},
			{"junk after section header", "[s] x\n"},
			{"equals in section name", "[a=b]\n"},
			{"bracket in section name", "[a[b]\n"},
			{"comment marker in section name", "[a;b]\n"},
			{"unterminated section name", "[abc\n"},
			{"section header at EOF without bracket", "[abc"},
		}
		for _, c := range cases {
			convey.Convey(c.name, func() {
				f, err := Parse(strings.NewReader(c.src))
				convey.So(f, convey.ShouldBeNil)
				convey.So(errors.Is(err, ErrSyntax), convey.ShouldBeTrue)
			})
		}
	})
}

func TestNameTooLong(t *testing.T) {
	convey.Convey("names over the limit abort the parse", t, func() {
		long := strings.Repeat("a", NameMaxLen+1)

		convey.Convey("section name", func() {
			f, err := Parse(strings.NewReader("[" + long + "]\n"))
			convey.So(f, convey.ShouldBeNil)
			convey.So(errors.Is(err, ErrNameTooLong), convey.ShouldBeTrue)
		})

		convey.Convey("key name", func() {
			f, err := Parse(strings.NewReader(long + " = 1\n"))
			convey.So(f, convey.ShouldBeNil)
			convey.So(errors.Is(err, ErrNameTooLong), convey.ShouldBeTrue)
		})

		convey.Convey("names exactly at the limit still pass", func() {
			max := strings.Repeat("a", NameMaxLen)
			f, err := Parse(strings.NewReader("[" + max + "]\n" + max + " = 1\n"))
			convey.So(err, convey.ShouldBeNil)
			convey.So(f.GetInt(max, max, 0), convey.ShouldEqual, 1)
		})
	})
}

func TestErrorOffset(t *testing.T) {
	convey.Convey("errors carry the byte offset of the violation", t, func() {
		_, err := Parse(strings.NewReader("[s]\nk = a]b\n"))
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.Error(), convey.ShouldStartWith, "ini:9:")
	})
}
