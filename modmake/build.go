package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	xor1Version = "1.0.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	xor1 := NewAppBuild("xor1", "cmd/xor1", xor1Version)
	xor1.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", xor1Version).
			Env("CGO_ENABLED", "0")
	})
	xor1.Variant("windows", "amd64")
	xor1.Variant("linux", "amd64")
	xor1.Variant("linux", "arm64")
	xor1.Variant("linux", "arm")
	xor1.Variant("darwin", "amd64")
	xor1.Variant("darwin", "arm64")
	b.ImportApp(xor1)

	b.Execute()
}
