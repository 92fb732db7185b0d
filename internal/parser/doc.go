// Package parser builds an ast.File from the lexer's token stream.
//
// Назначение: рекурсивный спуск с Pratt-циклом для бинарных операторов.
// Первая синтаксическая ошибка прекращает разбор файла: форматтер не
// печатает файл с ошибками, поэтому восстановление не нужно.
// Не делает: форматирование и проверку семантики.
package parser
