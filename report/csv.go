package report

import(
	"bufio"
	"bytes"
	"fmt"
	"io"
)

var HeadersText = "subject,statistic"

// These questions' subjects contain ", " and are always written quoted.
var quotedSubjects = map[string]bool{"q3":true, "q4":true}

// OutputAsCSV writes the rows literally. There is no escaping, beyond the fixed quoting of
// quotedSubjects.
func (r *Report)OutputAsCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", HeadersText)
	for i := range r.Subjects {
		subject := r.Subjects[i]
		if quotedSubjects[r.Question] { subject = `"` + subject + `"` }
		fmt.Fprintf(bw, "%s,%s\n", subject, r.Statistics[i])
	}
	return bw.Flush()
}

func (r *Report)CSVBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.OutputAsCSV(&buf); err != nil { return nil, err }
	return buf.Bytes(), nil
}
