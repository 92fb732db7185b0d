// Package doc defines the document algebra shared by the formatter, the
// space relaxer and the renderer.
//
// Назначение: неизменяемое дерево документа (Text, Cons, Break, Nest, Group,
// Force, Tagged, Marker) и комбинаторы для его построения.
// Не делает: раскладку по ширине строки (см. internal/render) и разбор
// исходного текста (см. internal/parser).
// Зависимости: нет.
//
// Documents are values. Nothing in this package or its consumers mutates a
// node after it has been built, so subtrees may be shared freely.
package doc
