package ini

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	convey.Convey("Load reads and parses a file from disk", t, func() {
		path := filepath.Join(t.TempDir(), "config.ini")
		src := "standalone = 1\n[server]\nport = 8080\nhost = \"127.0.0.1\"\n"
		convey.So(os.WriteFile(path, []byte(src), 0o644), convey.ShouldBeNil)

		f, err := Load(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(f.NumSections(), convey.ShouldEqual, 2)
		convey.So(f.GetInt("", "standalone", -1), convey.ShouldEqual, 1)
		convey.So(f.GetInt("server", "port", 0), convey.ShouldEqual, 8080)
		convey.So(f.GetString("server", "host", ""), convey.ShouldEqual, "127.0.0.1")

		f.Release()
	})
}

func TestLoadMissingFile(t *testing.T) {
	convey.Convey("a missing file surfaces the underlying I/O error", t, func() {
		f, err := Load(filepath.Join(t.TempDir(), "does-not-exist.ini"))
		convey.So(f, convey.ShouldBeNil)
		convey.So(errors.Is(err, fs.ErrNotExist), convey.ShouldBeTrue)
	})
}

func TestLoadBadFileDiscardsStore(t *testing.T) {
	convey.Convey("a syntax error never returns a partial store", t, func() {
		path := filepath.Join(t.TempDir(), "broken.ini")
		src := "[ok]\ngood = 1\nbad = a]b\n"
		convey.So(os.WriteFile(path, []byte(src), 0o644), convey.ShouldBeNil)

		f, err := Load(path)
		convey.So(f, convey.ShouldBeNil)
		convey.So(errors.Is(err, ErrSyntax), convey.ShouldBeTrue)
	})
}
