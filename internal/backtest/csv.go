package backtest

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeLedgerCSV(f, ledger)
}

// EncodeLedgerCSV writes the header and one row per period to w.
func EncodeLedgerCSV(out io.Writer, ledger []LedgerRow) error {
	w := csv.NewWriter(out)

	header := []string{
		"index",
		"period",
		"price",
		"stage",
		"requested",
		"released",
		"revenue",
		"holding_fee",
		"net_profit",
		"cum_net_profit",
		"accumulated",
		"remaining",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			strconv.Itoa(r.Period),
			fmtFloat(r.Price),
			string(r.Stage),
			fmtFloat(r.Requested),
			fmtFloat(r.Released),
			fmtFloat(r.Revenue),
			fmtFloat(r.HoldingFee),
			fmtFloat(r.NetProfit),
			fmtFloat(r.CumNetProfit),
			fmtFloat(r.Accumulated),
			fmtFloat(r.Remaining),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
