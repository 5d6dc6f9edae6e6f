package rentbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// recordEnvelope tags every JSONL line with the record kind it carries.
type recordEnvelope struct {
	Record RecordKind `json:"record"`
}

// DecodeLedger reads a ledger snapshot from a stream of JSONL records, one
// record per line, each line tagged with a "record" kind. Records are
// validated and indexed as they are appended: an invalid line stops the
// decode with a diagnostic naming the line, so downstream engines can assume
// validated input.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // skip empty lines
		}

		var envelope recordEnvelope
		if err := json.Unmarshal(lineBytes, &envelope); err != nil {
			return nil, fmt.Errorf("line %d: could not identify record in %q: %w", line, string(lineBytes), err)
		}

		rec, err := decodeRecord(envelope.Record, lineBytes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := ledger.Append(rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return ledger, nil
}

func decodeRecord(kind RecordKind, data []byte) (Record, error) {
	switch kind {
	case KindProperty:
		var p Property
		return p, unmarshalInto(data, &p)
	case KindUnit:
		var u Unit
		return u, unmarshalInto(data, &u)
	case KindTenant:
		var t Tenant
		return t, unmarshalInto(data, &t)
	case KindLease:
		var l Lease
		return l, unmarshalInto(data, &l)
	case KindPayment:
		var p Payment
		return p, unmarshalInto(data, &p)
	case KindExpense:
		var e Expense
		return e, unmarshalInto(data, &e)
	case KindAsset:
		var a Asset
		return a, unmarshalInto(data, &a)
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}

func unmarshalInto(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("could not decode record: %w", err)
	}
	return nil
}

// EncodeLedger writes the ledger back as JSONL, referents before referrers
// so the output decodes cleanly.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for p := range ledger.Properties() {
		if err := EncodeRecord(w, p); err != nil {
			return err
		}
	}
	for u := range ledger.Units() {
		if err := EncodeRecord(w, u); err != nil {
			return err
		}
	}
	for t := range ledger.Tenants() {
		if err := EncodeRecord(w, t); err != nil {
			return err
		}
	}
	for l := range ledger.Leases() {
		if err := EncodeRecord(w, l); err != nil {
			return err
		}
	}
	for p := range ledger.Payments() {
		if err := EncodeRecord(w, p); err != nil {
			return err
		}
	}
	for e := range ledger.Expenses() {
		if err := EncodeRecord(w, e); err != nil {
			return err
		}
	}
	for a := range ledger.Assets() {
		if err := EncodeRecord(w, a); err != nil {
			return err
		}
	}
	return nil
}

// EncodeRecord writes a single record as one JSONL line.
func EncodeRecord(w io.Writer, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("could not encode %s record: %w", rec.Kind(), err)
	}
	tag, _ := json.Marshal(recordEnvelope{Record: rec.Kind()})
	// splice the kind tag into the record's own object
	line := append(tag[:len(tag)-1], ',')
	line = append(line, body[1:]...)
	if _, err := w.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("could not write %s record: %w", rec.Kind(), err)
	}
	return nil
}
