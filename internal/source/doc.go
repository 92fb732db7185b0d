// Package source owns the bytes of the files being formatted.
//
// Назначение: FileSet с нормализованным содержимым (без BOM, LF, NFC),
// индексом строк и переводом Span в строку/колонку для диагностик.
// Не делает: лексический разбор и форматирование.
// Зависимости: golang.org/x/text (нормализация), fortio.org/safecast.
package source
