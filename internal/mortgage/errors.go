package mortgage

import "errors"

var (
	// ErrInvalidRate возвращается для отрицательной процентной ставки
	ErrInvalidRate = errors.New("некорректная процентная ставка")

	// ErrInvalidTerm возвращается, если срок кредита меньше одного месяца
	ErrInvalidTerm = errors.New("некорректный срок кредита")

	// ErrOutOfRange возвращается, если число платежей выходит за срок кредита
	ErrOutOfRange = errors.New("номер платежа вне срока кредита")

	// ErrMalformedTiers возвращается для пустого или несогласованного набора ступеней
	ErrMalformedTiers = errors.New("некорректные ступени ставки")
)
