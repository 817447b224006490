package machine

// randomSequence is the fixed sequence served by the 'r' token: the first 23
// values of glibc rand() with the default seed, the last entry wrapping back
// to the first. Determinism is the point; every session sees the same values
// in the same order.
var randomSequence = [...]int32{
	1804289383, 846930886, 1681692777, 1714636915, 1957747793, 424238335,
	719885386, 1649760492, 596516649, 1189641421, 1025202362, 1350490027,
	783368690, 1102520059, 2044897763, 1967513926, 1365180540, 1540383426,
	304089172, 1303455736, 35005211, 521595368, 1804289383,
}
