package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"
)

// depositPayload mirrors the deposit endpoint's request body
type depositPayload struct {
	Amount        float64 `json:"amount"`
	ProofImageURL string  `json:"proofImageUrl"`
}

// withdrawPayload mirrors the withdraw endpoint's request body
type withdrawPayload struct {
	Amount             float64 `json:"amount"`
	DestinationAccount string  `json:"destinationAccount"`
}

type result struct {
	statusCode   int
	responseTime time.Duration
	err          error
}

type stats struct {
	total      int
	successful int
	failed     int
	byStatus   map[int]int
	times      []time.Duration
	lock       sync.Mutex
}

func (s *stats) record(r result) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.total++
	if r.err == nil && r.statusCode < 500 {
		s.successful++
	} else {
		s.failed++
	}
	if r.err == nil {
		s.byStatus[r.statusCode]++
		s.times = append(s.times, r.responseTime)
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "portal base URL")
	sessionToken := flag.String("session", "", "session cookie value of a test user")
	cookieName := flag.String("cookie", "session", "session cookie name")
	requests := flag.Int("n", 200, "total number of requests")
	concurrency := flag.Int("c", 10, "concurrent workers")
	withdrawRatio := flag.Float64("withdraw", 0.5, "fraction of requests that are withdrawals")
	flag.Parse()

	if *sessionToken == "" {
		fmt.Println("a -session token is required; create one via the auth provider first")
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}
	st := &stats{byStatus: make(map[int]int)}
	jobs := make(chan int)

	var wg sync.WaitGroup
	start := time.Now()

	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			for range jobs {
				st.record(fireRequest(client, rng, *baseURL, *cookieName, *sessionToken, *withdrawRatio))
			}
		}()
	}

	for i := 0; i < *requests; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	printStats(st, time.Since(start))
}

func fireRequest(client *http.Client, rng *rand.Rand, baseURL, cookieName, token string, withdrawRatio float64) result {
	// Amounts between the 10000 minimum and 50000
	amount := 10000 + float64(rng.Intn(4000000))/100

	var path string
	var payload any
	if rng.Float64() < withdrawRatio {
		path = "/api/wallet/withdraw"
		payload = withdrawPayload{Amount: amount, DestinationAccount: "BCA 1234567890"}
	} else {
		path = "/api/wallet/deposit"
		payload = depositPayload{Amount: amount, ProofImageURL: "https://cdn.example.com/proof.jpg"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return result{err: err}
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return result{err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})

	begin := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(begin)
	if err != nil {
		return result{err: err, responseTime: elapsed}
	}
	defer resp.Body.Close()

	return result{statusCode: resp.StatusCode, responseTime: elapsed}
}

func printStats(st *stats, total time.Duration) {
	fmt.Printf("\nRequests:    %d (%d ok, %d failed)\n", st.total, st.successful, st.failed)
	fmt.Printf("Duration:    %s (%.1f req/s)\n", total.Round(time.Millisecond), float64(st.total)/total.Seconds())

	for code, count := range st.byStatus {
		fmt.Printf("  HTTP %d: %d\n", code, count)
	}

	if len(st.times) == 0 {
		return
	}
	sort.Slice(st.times, func(i, j int) bool { return st.times[i] < st.times[j] })
	fmt.Printf("Latency:     min %s / p50 %s / p95 %s / max %s\n",
		st.times[0].Round(time.Millisecond),
		st.times[len(st.times)/2].Round(time.Millisecond),
		st.times[len(st.times)*95/100].Round(time.Millisecond),
		st.times[len(st.times)-1].Round(time.Millisecond),
	)
}
