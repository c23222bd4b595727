package entry

import (
	"encoding/binary"
	"io"
	"os"
)

// truncateTornTail cuts an incomplete or corrupt frame off the end of a
// segment, so appends resume exactly where the intact log ends. A missing
// file is fine; Open may be resuming into a fresh directory.
func truncateTornTail(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	valid := int64(0)
	for {
		rec, err := readRecord(f)
		if err != nil {
			break
		}
		valid += int64(21 + len(rec.Data) + 4)
	}

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == valid {
		return nil
	}
	return f.Truncate(valid)
}

// maxSeqInSegment scans a WAL segment and returns the maximum sequence ID
// found. It is used only for snapshot-based truncation.
func maxSeqInSegment(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var max uint64

	for {
		// Header: [type:1][seq:8][time:8][len:4]
		header := make([]byte, 21)
		if _, err := io.ReadFull(f, header); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return max, nil
			}
			return max, err
		}

		seq := binary.BigEndian.Uint64(header[1:9])
		if seq > max {
			max = seq
		}

		payloadLen := binary.BigEndian.Uint32(header[17:21])

		// Skip payload + CRC
		if _, err := f.Seek(int64(payloadLen+4), io.SeekCurrent); err != nil {
			return max, err
		}
	}
}
