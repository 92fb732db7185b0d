// Package format turns a parsed file into a document tree.
//
// Назначение: печать AST в алгебру документов (internal/doc).
// Не делает: раскладку по ширине (internal/render) и расстановку пробелов
// внутри скобок (internal/relax).
//
// Layout follows the Elixir formatter: containers break one element per
// line, pipelines break before `|>`, do-blocks always break.
package format
