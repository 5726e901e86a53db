package dailywords

import "time"

type Storage interface {
	AddWords(RankedWordList, time.Time) error // 1日分の単語と出現回数を挿入する。同じ日付でも上書きしない
	GetWords(time.Time) ([]WordRecord, error) // 日付の単語を出現回数の多い順に返す
}

type WordRecord struct {
	Word  string `db:"word"`
	Count int    `db:"count"`
	Date  string `db:"date"`
}

func NewWordRecord(word string, count int, date time.Time) WordRecord {
	return WordRecord{
		Word:  word,
		Count: count,
		Date:  DateString(date),
	}
}
