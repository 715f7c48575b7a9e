package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"game-api/internal/dto"
	"game-api/internal/entities"
	"game-api/internal/repositories"
	"game-api/pkg/config"
	"game-api/pkg/embedding"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/filestorage"
	"game-api/pkg/llm"
	"game-api/pkg/pdftext"
)

const (
	resumeDir          = "cvs"
	resumeSuffix       = "-101.pdf"
	indexConcurrency   = 4
	resumeSystemPrompt = "Eres un asistente de selección de personal. Responde en español usando únicamente " +
		"la información de los fragmentos de currículums proporcionados. Si la respuesta no está en los " +
		"fragmentos, indica que no la encontraste."
)

// PDFExtractor returns the plain text of the PDF stored at path.
type PDFExtractor func(path string) (string, error)

type ResumeServiceInterface interface {
	Exists(personID uint64) bool
	Upload(ctx context.Context, personID uint64, file io.Reader) error
	ListFiles() ([]string, error)
	Index(ctx context.Context) (*dto.ResumeIndexDTO, error)
	Ask(ctx context.Context, question string) (*dto.ResumeAnswerDTO, error)
}

type ResumeService struct {
	repo        repositories.ResumeRepositoryInterface
	txManager   repositories.TxManagerInterface
	fileStorage filestorage.FileStorageInterface
	engine      embedding.Engine
	completer   llm.Completer
	extract     PDFExtractor
	cfg         config.EmbeddingConfig
	logger      *zap.Logger
}

func NewResumeService(
	repo repositories.ResumeRepositoryInterface,
	txManager repositories.TxManagerInterface,
	fileStorage filestorage.FileStorageInterface,
	engine embedding.Engine,
	completer llm.Completer,
	extract PDFExtractor,
	cfg config.EmbeddingConfig,
	logger *zap.Logger,
) ResumeServiceInterface {
	if extract == nil {
		extract = pdftext.ExtractFile
	}
	return &ResumeService{
		repo:        repo,
		txManager:   txManager,
		fileStorage: fileStorage,
		engine:      engine,
		completer:   completer,
		extract:     extract,
		cfg:         cfg,
		logger:      logger,
	}
}

func resumeFile(personID uint64) string {
	return path.Join(resumeDir, fmt.Sprintf("%d%s", personID, resumeSuffix))
}

func (s *ResumeService) Exists(personID uint64) bool {
	return s.fileStorage.Exists(resumeFile(personID))
}

func (s *ResumeService) Upload(ctx context.Context, personID uint64, file io.Reader) error {
	if _, err := s.fileStorage.SaveAs(file, resumeFile(personID)); err != nil {
		s.logger.Error("error al guardar el CV", zap.Uint64("persona_id", personID), zap.Error(err))
		return apperrors.NewInternalError("No se pudo guardar el archivo", err)
	}
	s.logger.Info("CV cargado", zap.Uint64("persona_id", personID))
	return nil
}

func (s *ResumeService) ListFiles() ([]string, error) {
	files, err := s.fileStorage.List(resumeDir, ".pdf")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewNotFoundError("La carpeta de CVs no existe")
		}
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Index extracts, chunks and embeds every PDF and replaces the stored collection.
func (s *ResumeService) Index(ctx context.Context) (*dto.ResumeIndexDTO, error) {
	files, err := s.ListFiles()
	if err != nil {
		var httpErr *apperrors.HttpError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound {
			return nil, apperrors.NewNotFoundError("No hay archivos PDF para indexar.")
		}
		return nil, err
	}
	if len(files) == 0 {
		return nil, apperrors.NewNotFoundError("No hay archivos PDF para indexar.")
	}

	perFile := make([][]entities.ResumeFragment, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(indexConcurrency)
	for i, name := range files {
		g.Go(func() error {
			fragments, err := s.indexFile(gctx, name)
			if err != nil {
				return err
			}
			perFile[i] = fragments
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, s.providerError(err)
	}

	fragments := make([]entities.ResumeFragment, 0)
	for _, f := range perFile {
		fragments = append(fragments, f...)
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.repo.ReplaceCollection(ctx, tx, s.cfg.Collection, fragments)
	})
	if err != nil {
		return nil, apperrors.NewInternalError("No se pudo guardar el índice", err)
	}

	s.logger.Info("CVs indexados", zap.Int("documentos", len(files)), zap.Int("fragmentos", len(fragments)))
	return &dto.ResumeIndexDTO{
		Message:   fmt.Sprintf("Se indexaron %d nodos desde %d documentos.", len(fragments), len(files)),
		Documents: files,
	}, nil
}

func (s *ResumeService) indexFile(ctx context.Context, name string) ([]entities.ResumeFragment, error) {
	fullPath, err := s.fileStorage.Path(path.Join(resumeDir, name))
	if err != nil {
		return nil, err
	}
	text, err := s.extract(fullPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer %s: %w", name, err)
	}

	chunks := embedding.SplitText(text, s.cfg.ChunkSize, s.cfg.ChunkOverlap)
	if len(chunks) == 0 {
		s.logger.Warn("CV sin texto extraíble", zap.String("archivo", name))
		return nil, nil
	}

	vectors, err := s.engine.EmbedBatch(ctx, chunks, embedding.TaskRetrievalDocument)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("se esperaban %d embeddings para %s, se recibieron %d", len(chunks), name, len(vectors))
	}

	fragments := make([]entities.ResumeFragment, 0, len(chunks))
	for i, chunk := range chunks {
		fragments = append(fragments, entities.ResumeFragment{
			Collection: s.cfg.Collection,
			File:       name,
			Ordinal:    i,
			Content:    chunk,
			Embedding:  vectors[i],
		})
	}
	return fragments, nil
}

// Ask retrieves the closest fragments and has the LLM answer from them.
func (s *ResumeService) Ask(ctx context.Context, question string) (*dto.ResumeAnswerDTO, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, apperrors.NewBadRequestError("Debe indicar una pregunta")
	}

	fragments, err := s.repo.FindByCollection(ctx, s.cfg.Collection)
	if err != nil {
		return nil, err
	}
	if len(fragments) == 0 {
		return nil, apperrors.NewNotFoundError("No hay currículums indexados")
	}

	vectors, err := s.engine.EmbedBatch(ctx, []string{question}, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, s.providerError(err)
	}
	if len(vectors) == 0 {
		return nil, apperrors.NewInternalError("Error al consultar: embedding vacío", nil)
	}

	corpus := make([][]float32, len(fragments))
	for i, f := range fragments {
		corpus[i] = f.Embedding
	}
	top := embedding.FindTopK(vectors[0], corpus, s.cfg.TopK)

	var b strings.Builder
	for i, r := range top {
		f := fragments[r.Index]
		fmt.Fprintf(&b, "[Fragmento %d - %s]\n%s\n\n", i+1, f.File, f.Content)
	}
	prompt := fmt.Sprintf("Fragmentos:\n\n%s\nPregunta: %s", b.String(), question)

	answer, err := s.completer.Complete(ctx, resumeSystemPrompt, prompt)
	if err != nil {
		return nil, s.providerError(err)
	}
	return &dto.ResumeAnswerDTO{Answer: strings.TrimSpace(answer)}, nil
}

func (s *ResumeService) providerError(err error) error {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return apperrors.NewInternalError(llm.ErrNotConfigured.Error(), err)
	case errors.Is(err, embedding.ErrNotConfigured):
		return apperrors.NewInternalError(embedding.ErrNotConfigured.Error(), err)
	}
	s.logger.Error("error en el proveedor de IA", zap.Error(err))
	return apperrors.NewInternalError("Error al consultar: "+err.Error(), err)
}
