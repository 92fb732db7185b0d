// Package diagfmt renders diagnostics and IR dumps for the CLI.
//
// Назначение: человекочитаемый и JSON вывод диагностик, дампы токенов
// и дерева документа (tree/JSON/YAML).
// Не делает: сбор диагностик (internal/diag) и их сортировку; Bag
// сортируется вызывающим.
package diagfmt
