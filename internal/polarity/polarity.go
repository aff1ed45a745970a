// Package polarity scores free text for opinion direction and
// opinionatedness with a small pattern lexicon. Polarity is in [-1, 1],
// subjectivity in [0, 1]; text with no lexicon hits scores (0, 0).
package polarity

import (
	"strings"
	"unicode"
)

type entry struct {
	polarity     float64
	subjectivity float64
}

// Word weights follow the pattern-en sentiment lexicon conventions:
// strong evaluative adjectives near ±1, mild ones near ±0.3.
var lexicon = map[string]entry{
	"amazing":       {0.6, 0.9},
	"awesome":       {1.0, 1.0},
	"excellent":     {1.0, 1.0},
	"outstanding":   {0.9, 1.0},
	"fantastic":     {0.9, 0.9},
	"wonderful":     {1.0, 1.0},
	"great":         {0.8, 0.75},
	"good":          {0.7, 0.6},
	"nice":          {0.6, 1.0},
	"best":          {1.0, 0.3},
	"better":        {0.5, 0.5},
	"love":          {0.5, 0.6},
	"loved":         {0.7, 0.8},
	"like":          {0.3, 0.4},
	"enjoy":         {0.4, 0.5},
	"enjoyable":     {0.5, 0.6},
	"helpful":       {0.6, 0.6},
	"supportive":    {0.5, 0.5},
	"clear":         {0.3, 0.4},
	"engaging":      {0.6, 0.7},
	"interesting":   {0.5, 0.5},
	"impressive":    {0.8, 0.9},
	"brilliant":     {0.9, 0.9},
	"perfect":       {1.0, 1.0},
	"happy":         {0.8, 1.0},
	"satisfied":     {0.5, 0.6},
	"thorough":      {0.4, 0.5},
	"organized":     {0.4, 0.4},
	"effective":     {0.5, 0.5},
	"efficient":     {0.5, 0.5},
	"friendly":      {0.6, 0.7},
	"patient":       {0.4, 0.5},
	"knowledgeable": {0.6, 0.6},
	"improved":      {0.4, 0.4},
	"fun":           {0.3, 0.2},
	"easy":          {0.4, 0.8},
	"fair":          {0.7, 0.9},
	"smooth":        {0.4, 0.6},
	"useful":        {0.3, 0.3},
	"valuable":      {0.5, 0.6},
	"recommend":     {0.4, 0.4},
	"recommended":   {0.5, 0.5},
	"positive":      {0.3, 0.6},
	"fine":          {0.4, 0.5},
	"okay":          {0.2, 0.5},
	"decent":        {0.3, 0.4},

	"awful":          {-1.0, 1.0},
	"terrible":       {-1.0, 1.0},
	"horrible":       {-1.0, 1.0},
	"dreadful":       {-0.9, 1.0},
	"bad":            {-0.7, 0.67},
	"worst":          {-1.0, 0.3},
	"worse":          {-0.5, 0.5},
	"poor":           {-0.4, 0.6},
	"hate":           {-0.8, 0.9},
	"hated":          {-0.9, 0.9},
	"dislike":        {-0.4, 0.5},
	"boring":         {-0.8, 1.0},
	"dull":           {-0.4, 0.5},
	"confusing":      {-0.5, 0.7},
	"confused":       {-0.5, 0.8},
	"unclear":        {-0.4, 0.6},
	"difficult":      {-0.5, 1.0},
	"hard":           {-0.3, 0.5},
	"unfair":         {-0.7, 0.9},
	"useless":        {-0.6, 0.7},
	"pointless":      {-0.6, 0.7},
	"disappointing":  {-0.6, 0.7},
	"disappointed":   {-0.75, 0.75},
	"frustrating":    {-0.7, 0.8},
	"frustrated":     {-0.6, 0.8},
	"annoying":       {-0.6, 0.8},
	"annoyed":        {-0.5, 0.8},
	"slow":           {-0.3, 0.4},
	"broken":         {-0.4, 0.5},
	"wrong":          {-0.5, 0.5},
	"unhappy":        {-0.6, 0.8},
	"unhelpful":      {-0.5, 0.6},
	"rude":           {-0.6, 0.9},
	"messy":          {-0.4, 0.6},
	"chaotic":        {-0.5, 0.7},
	"disorganized":   {-0.5, 0.6},
	"negative":       {-0.3, 0.6},
	"mediocre":       {-0.3, 0.5},
	"inadequate":     {-0.5, 0.6},
	"insufficient":   {-0.4, 0.5},
	"unsatisfactory": {-0.6, 0.7},
	"stressful":      {-0.5, 0.8},
	"painful":        {-0.7, 0.8},
	"waste":          {-0.5, 0.5},
}

// Intensifiers scale the next sentiment-bearing word, mirroring
// pattern-en modifier handling.
var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"incredibly": 1.5,
	"so":         1.2,
	"too":        1.2,
	"quite":      1.1,
	"highly":     1.3,
	"absolutely": 1.4,
	"totally":    1.3,
	"slightly":   0.8,
	"somewhat":   0.8,
	"fairly":     0.9,
	"rather":     0.9,
}

var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"neither": true,
	"nor":     true,
	"cannot":  true,
	"cant":    true,
	"dont":    true,
	"doesnt":  true,
	"didnt":   true,
	"isnt":    true,
	"wasnt":   true,
	"wont":    true,
	"nothing": true,
	"hardly":  true,
	"barely":  true,
}

const negationFactor = -0.5

// Score returns the averaged polarity and subjectivity of every lexicon
// assessment found in text.
func Score(text string) (float64, float64) {
	tokens := tokenize(text)

	var polaritySum, subjectivitySum float64
	var assessments int

	modifier := 1.0
	negated := false
	for _, token := range tokens {
		if factor, ok := intensifiers[token]; ok {
			modifier *= factor
			continue
		}
		if negators[token] {
			negated = true
			continue
		}

		e, ok := lexicon[token]
		if !ok {
			// A non-sentiment word breaks any pending modifier chain.
			modifier = 1.0
			negated = false
			continue
		}

		p := e.polarity * modifier
		if negated {
			p *= negationFactor
		}
		if p > 1 {
			p = 1
		} else if p < -1 {
			p = -1
		}
		s := e.subjectivity
		if s > 1 {
			s = 1
		}

		polaritySum += p
		subjectivitySum += s
		assessments++
		modifier = 1.0
		negated = false
	}

	if assessments == 0 {
		return 0, 0
	}
	return polaritySum / float64(assessments), subjectivitySum / float64(assessments)
}

func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r):
			return unicode.ToLower(r)
		case r == '\'':
			// drop apostrophes so "don't" matches "dont"
			return -1
		default:
			return ' '
		}
	}, text)
	return strings.Fields(cleaned)
}
