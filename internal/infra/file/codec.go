// Package file stores the question bank and player history as flat binary files whose layout
// matches the fixed-size records written by the desktop quiz, so existing
// quiz_questions.dat and quiz_players.dat files keep working.
//
// Each file is a 32-bit count in native byte order followed by that many records:
//
//	question: [256]byte prompt, 4 x [128]byte options, int32 correct, int32 difficulty (776 bytes)
//	player:   [50]byte name, 2 padding bytes, 3 x int32 scores                           (64 bytes)
//
// Strings are NUL-padded.
package file

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"quizmaster/internal/domain"
)

const (
	countSize = 4

	questionTextSize   = domain.MaxQuestionText + 1
	optionTextSize     = domain.MaxOptionText + 1
	QuestionRecordSize = questionTextSize + domain.OptionCount*optionTextSize + 4 + 4

	playerNameSize   = domain.MaxPlayerName + 1
	playerNamePad    = 2
	PlayerRecordSize = playerNameSize + playerNamePad + domain.DifficultyCount*4
)

var byteOrder = binary.NativeEndian

func encodeQuestions(questions []domain.Question) []byte {
	buf := make([]byte, countSize+len(questions)*QuestionRecordSize)
	byteOrder.PutUint32(buf, uint32(len(questions)))
	for i, q := range questions {
		rec := buf[countSize+i*QuestionRecordSize:][:QuestionRecordSize]
		putString(rec[:questionTextSize], q.Text)
		off := questionTextSize
		for _, opt := range q.Options {
			putString(rec[off:off+optionTextSize], opt)
			off += optionTextSize
		}
		byteOrder.PutUint32(rec[off:], uint32(int32(q.Correct)))
		byteOrder.PutUint32(rec[off+4:], uint32(int32(q.Difficulty)))
	}
	return buf
}

func decodeQuestion(rec []byte) (domain.Question, bool) {
	var q domain.Question
	q.Text = getString(rec[:questionTextSize])
	off := questionTextSize
	for i := range q.Options {
		q.Options[i] = getString(rec[off : off+optionTextSize])
		off += optionTextSize
	}
	q.Correct = int(int32(byteOrder.Uint32(rec[off:])))
	q.Difficulty = domain.Difficulty(int32(byteOrder.Uint32(rec[off+4:])))
	return q, q.Validate() == nil
}

func encodePlayers(players []domain.PlayerRecord) []byte {
	buf := make([]byte, countSize+len(players)*PlayerRecordSize)
	byteOrder.PutUint32(buf, uint32(len(players)))
	for i, p := range players {
		rec := buf[countSize+i*PlayerRecordSize:][:PlayerRecordSize]
		putString(rec[:playerNameSize], p.Name)
		off := playerNameSize + playerNamePad
		for _, score := range p.Scores {
			byteOrder.PutUint32(rec[off:], uint32(int32(score)))
			off += 4
		}
	}
	return buf
}

func decodePlayer(rec []byte) (domain.PlayerRecord, bool) {
	var p domain.PlayerRecord
	p.Name = getString(rec[:playerNameSize])
	off := playerNameSize + playerNamePad
	for i := range p.Scores {
		p.Scores[i] = int(int32(byteOrder.Uint32(rec[off:])))
		off += 4
	}
	return p, p.Name != ""
}

// decodeRecords reads at most min(declared, available, capacity) records. Anything short of the
// declared count, or an invalid record, is reported as ErrStorageCorrupt alongside the valid ones.
func decodeRecords[T any](data []byte, recordSize, capacity int, decode func([]byte) (T, bool)) ([]T, error) {
	if len(data) < countSize {
		return nil, fmt.Errorf("%w: %d byte header", domain.ErrStorageCorrupt, len(data))
	}
	declared := int(int32(byteOrder.Uint32(data)))
	if declared < 0 {
		return nil, fmt.Errorf("%w: negative count %d", domain.ErrStorageCorrupt, declared)
	}
	available := (len(data) - countSize) / recordSize
	n := min(declared, available, capacity)

	out := make([]T, 0, n)
	skipped := 0
	for i := 0; i < n; i++ {
		rec := data[countSize+i*recordSize:][:recordSize]
		v, ok := decode(rec)
		if !ok {
			skipped++
			continue
		}
		out = append(out, v)
	}

	if n < declared || skipped > 0 {
		return out, fmt.Errorf("%w: declared %d records, read %d, skipped %d", domain.ErrStorageCorrupt, declared, n, skipped)
	}
	return out, nil
}

// putString copies s into a NUL-padded buffer, always leaving room for the terminator.
func putString(dst []byte, s string) {
	s = domain.Truncate(s, len(dst)-1)
	n := copy(dst, s)
	clear(dst[n:])
}

func getString(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		return string(src[:i])
	}
	// unterminated: keep what fits next to a terminator
	return domain.Truncate(string(src), len(src)-1)
}
