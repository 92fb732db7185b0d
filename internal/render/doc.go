// Package render lays a document tree out within a line width.
//
// Назначение: алгоритм Wadler/Lindig с семантикой Inspect.Algebra:
// группы решают flat/break по помещаемости, строгие разрывы следуют
// режиму группы, гибкие рвутся только если следующий кусок не влезает.
// Не делает: построение документа (internal/format).
//
// Rendering is iterative over an explicit stack, so document depth is
// bounded by memory only.
package render
