package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

const programListHTML = `<html><body>
<article>
  <h2>Công nghệ thông tin</h2>
  <a href="/nganh/cong-nghe-thong-tin">Chi tiết</a>
  <p>Đào tạo kỹ sư phần mềm và hệ thống.</p>
</article>
<article>
  <h2>Thiết kế đồ họa</h2>
  <a href="/nganh/thiet-ke-do-hoa">Chi tiết</a>
  <p>Đào tạo chuyên viên thiết kế sáng tạo.</p>
</article>
<article>
  <a href="/nganh/khuyet-tieu-de">Chi tiết</a>
</article>
</body></html>`

func TestFetchProgramsParsesListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(programListHTML))
	}))
	defer server.Close()

	scraper := NewScraperService(nil, []ScrapeSource{{Name: "test", URL: server.URL}}, zap.NewNop())

	programs, err := scraper.FetchPrograms(context.Background())
	if err != nil {
		t.Fatalf("FetchPrograms failed: %v", err)
	}
	if len(programs) != 2 {
		t.Fatalf("expected 2 programs, got %d", len(programs))
	}
	if programs[0].Title != "Công nghệ thông tin" {
		t.Fatalf("unexpected first title: %q", programs[0].Title)
	}
	if programs[0].URL != server.URL+"/nganh/cong-nghe-thong-tin" {
		t.Fatalf("relative link not resolved: %q", programs[0].URL)
	}
	if programs[1].Summary == "" {
		t.Fatal("expected summary text")
	}
}

func TestFetchProgramsReportsStructureChange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div>nothing here</div></body></html>`))
	}))
	defer server.Close()

	scraper := NewScraperService(nil, []ScrapeSource{{Name: "test", URL: server.URL}}, zap.NewNop())

	_, err := scraper.FetchPrograms(context.Background())
	if err == nil {
		t.Fatal("expected error for unrecognized page structure")
	}
	if !IsStructureError(err) {
		t.Fatalf("expected structure error, got %v", err)
	}
}

func TestFetchProgramsSkipsFailedSource(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(programListHTML))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	scraper := NewScraperService(nil, []ScrapeSource{
		{Name: "good", URL: good.URL},
		{Name: "bad", URL: bad.URL},
	}, zap.NewNop())

	programs, err := scraper.FetchPrograms(context.Background())
	if err != nil {
		t.Fatalf("FetchPrograms failed: %v", err)
	}
	if len(programs) != 2 {
		t.Fatalf("expected results from the healthy source, got %d", len(programs))
	}
}
