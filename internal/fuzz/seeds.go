package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB на один вход фаззера
)

var builtinSeeds = []string{
	"",
	"foo(1, 2)\n",
	"{:ok, [1, 2, 3]}\n",
	"<<1, 2, rest::binary>>\n",
	"%{a: 1, \"b\" => [x | y]}\n",
	"defmodule A do\n  def f(x), do: x + 1\nend\n",
	"case x do\n  {:ok, v} -> v\n  _ -> nil\nend\n",
	"# comment\nfoo() # trailing\n",
	"fn a, b -> a * b end\n",
	"\"interp #{x} here\"\n",
	"x |> f() |> g(1)\n",
	"@attr [\n  key: :value\n]\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все .ex/.exs файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".ex" && ext != ".exs" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
