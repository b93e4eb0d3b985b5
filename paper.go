package printcolor

// grams per square metre for one unit of each paper weight scale
var toGSM = map[PaperUnit]float64{
	UnitGSM:     1,
	UnitLbText:  1.4802,
	UnitLbCover: 2.7080,
}

// ConvertPaperWeight converts value between gsm, lb_text and lb_cover,
// rounded to 2 decimals.
func ConvertPaperWeight(value float64, from, to PaperUnit) (float64, error) {
	if err := requirePositive("value", value); err != nil {
		return 0, err
	}
	fu, err := ParsePaperUnit(string(from))
	if err != nil {
		return 0, err
	}
	tu, err := ParsePaperUnit(string(to))
	if err != nil {
		return 0, err
	}
	return round(value*toGSM[fu]/toGSM[tu], 2), nil
}
