package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"mlc/internal/diag"
	"mlc/internal/fileman"
	"mlc/internal/lexer"
	"mlc/internal/source"
	"mlc/internal/token"
)

// FileResult содержит результат токенизации одного файла
type FileResult struct {
	Path      string        // путь к файлу, как он был найден
	FileID    source.FileID // ID файла в source.Manager
	Tokens    []token.Token // токены файла, включая EOF
	Bag       *diag.Bag     // диагностики файла
	DiagStats diag.Stats
	Stats     lexer.Stats
}

// listMLFiles возвращает отсортированный список всех *.ml файлов в директории
func listMLFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".ml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.ml файлы в директории параллельно.
// Интернер общий на все файлы, bag у каждого файла свой.
func TokenizeDir(ctx context.Context, dir string, opts Options, jobs int) (*source.Manager, *source.Interner, []FileResult, error) {
	files, err := listMLFiles(dir)
	if err != nil {
		return nil, nil, nil, err
	}

	mgr := source.NewManager(fileman.New())
	interner := source.NewInterner()

	if len(files) == 0 {
		return mgr, interner, nil, nil
	}

	// Предзагрузка последовательная: регистрация файлов раздаёт базы
	// в глобальном пространстве локаций в детерминированном порядке.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := mgr.CreateFileID(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(0)
			dm := newDiagManager(opts, bag)

			if loadErr, failed := loadErrors[path]; failed {
				reportLoadError(dm, path, loadErr)
				results[i] = FileResult{Path: path, Bag: bag, DiagStats: dm.Stats()}
				return nil
			}

			fileID := fileIDs[path]
			file := mgr.File(fileID)

			lx := lexer.New(file, interner, dm, opts.Lexer)
			tokens := make([]token.Token, 0, len(file.Content)/7+64)
			for {
				tok := lx.NextToken()
				tokens = append(tokens, tok)
				if tok.Kind == token.EOF || !dm.ShouldContinue() {
					break
				}
			}

			results[i] = FileResult{
				Path:      path,
				FileID:    fileID,
				Tokens:    tokens,
				Bag:       bag,
				DiagStats: dm.Stats(),
				Stats:     lx.Stats(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return mgr, interner, results, err
	}
	return mgr, interner, results, nil
}

// MergeBags собирает диагностики всех файлов в один отсортированный bag.
func MergeBags(results []FileResult) *diag.Bag {
	merged := diag.NewBag(0)
	for _, res := range results {
		if res.Bag != nil {
			merged.Merge(res.Bag)
		}
	}
	merged.Sort()
	return merged
}

// AggregateStats суммирует статистику лексеров по всем файлам.
func AggregateStats(results []FileResult) lexer.Stats {
	var total lexer.Stats
	for _, res := range results {
		total.Merge(res.Stats)
	}
	return total
}
