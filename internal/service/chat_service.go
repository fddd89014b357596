package service

import (
	"context"
	"fmt"
	"time"

	"degrondvraag-be/internal/constant"
	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/entity"
	"degrondvraag-be/internal/pkg/logger"
	"degrondvraag-be/internal/repository/memory"
	"degrondvraag-be/internal/repository/specification"
	"degrondvraag-be/internal/repository/unitofwork"
	"degrondvraag-be/pkg/llm"

	"github.com/google/uuid"
)

// Clarus answers questions about one essay and nothing else.
const clarusSystemPrompt = "Je bent Clarus, een reflectieve gesprekspartner op degrondvraag.com. " +
	"Je beantwoordt vragen over het onderstaande essay. Blijf bij het essay, " +
	"speculeer niet over andere onderwerpen en antwoord in het Nederlands.\n\nEssay:\n%s"

type IChatService interface {
	// Transcript returns the caller's transcript for an essay. A stored
	// transcript for a different essay is overwritten with the greeting.
	Transcript(ctx context.Context, userId uuid.UUID, essaySlug string) (*dto.TranscriptResponse, error)
	// Send relays one question. On any provider failure the transcript gets
	// one fixed fallback assistant message and the call still succeeds.
	Send(ctx context.Context, userId uuid.UUID, essaySlug string, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	// Reset discards the history and starts over from the greeting.
	Reset(ctx context.Context, userId uuid.UUID, essaySlug string) (*dto.TranscriptResponse, error)
	// Relay is the stateless wire endpoint: question + essay body + history in,
	// answer out. One attempt, no retry.
	Relay(ctx context.Context, userId uuid.UUID, req *dto.RelayChatRequest) (*dto.RelayChatResponse, error)

	ListLogs(ctx context.Context, limit, offset int) ([]*dto.ChatLogItem, error)
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	llmProvider    llm.LLMProvider
	transcriptRepo *memory.TranscriptRepository
	logger         logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	transcriptRepo *memory.TranscriptRepository,
	logger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		llmProvider:    llmProvider,
		transcriptRepo: transcriptRepo,
		logger:         logger,
	}
}

func greeting(essayTitle string) entity.ChatMessage {
	return entity.ChatMessage{
		Role: constant.ChatRoleAssistant,
		Text: fmt.Sprintf(constant.ChatGreetingFormat, essayTitle),
	}
}

// loadEssay fetches one published essay; drafts are as unavailable to the
// chat as they are to direct navigation.
func (s *chatService) loadEssay(ctx context.Context, essaySlug string) (*entity.Essay, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	essay, err := uow.EssayRepository().FindOne(ctx, specification.BySlug{Slug: essaySlug})
	if err != nil {
		return nil, err
	}
	if essay == nil || !essay.IsPublished() {
		return nil, ErrNotAvailable
	}
	return essay, nil
}

// loadTranscript returns the stored transcript when it matches the essay,
// otherwise a fresh one seeded with the greeting.
func (s *chatService) loadTranscript(identityId string, essay *entity.Essay) *entity.Transcript {
	if stored, found := s.transcriptRepo.Get(identityId); found && stored.EssaySlug == essay.Slug {
		return stored
	}
	return &entity.Transcript{
		EssaySlug: essay.Slug,
		History:   []entity.ChatMessage{greeting(essay.Title)},
	}
}

func toTranscriptResponse(t *entity.Transcript) *dto.TranscriptResponse {
	history := make([]dto.TranscriptMessage, 0, len(t.History))
	for _, m := range t.History {
		history = append(history, dto.TranscriptMessage{Role: m.Role, Text: m.Text})
	}
	return &dto.TranscriptResponse{
		EssaySlug: t.EssaySlug,
		History:   history,
		Busy:      t.Busy,
	}
}

func (s *chatService) Transcript(ctx context.Context, userId uuid.UUID, essaySlug string) (*dto.TranscriptResponse, error) {
	essay, err := s.loadEssay(ctx, essaySlug)
	if err != nil {
		return nil, err
	}

	transcript := s.loadTranscript(userId.String(), essay)
	s.transcriptRepo.Save(userId.String(), transcript)
	return toTranscriptResponse(transcript), nil
}

func (s *chatService) Reset(ctx context.Context, userId uuid.UUID, essaySlug string) (*dto.TranscriptResponse, error) {
	essay, err := s.loadEssay(ctx, essaySlug)
	if err != nil {
		return nil, err
	}

	transcript := &entity.Transcript{
		EssaySlug: essay.Slug,
		History:   []entity.ChatMessage{greeting(essay.Title)},
	}
	s.transcriptRepo.Save(userId.String(), transcript)
	return toTranscriptResponse(transcript), nil
}

func (s *chatService) Send(ctx context.Context, userId uuid.UUID, essaySlug string, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	essay, err := s.loadEssay(ctx, essaySlug)
	if err != nil {
		return nil, err
	}

	identityId := userId.String()
	transcript := s.loadTranscript(identityId, essay)
	if transcript.Busy {
		return nil, ErrChatBusy
	}

	// Optimistic append: the visitor's message is part of the transcript
	// whether or not the provider answers.
	transcript.History = append(transcript.History, entity.ChatMessage{
		Role: constant.ChatRoleUser,
		Text: req.Vraag,
	})
	transcript.Busy = true
	s.transcriptRepo.Save(identityId, transcript)

	answer, failed := s.ask(ctx, essay.Body, transcript.History)

	transcript.History = append(transcript.History, entity.ChatMessage{
		Role: constant.ChatRoleAssistant,
		Text: answer,
	})
	transcript.Busy = false
	s.transcriptRepo.Save(identityId, transcript)

	s.persistLog(ctx, userId, essay.Slug, req.Vraag, answer, failed)

	return &dto.SendChatResponse{
		Antwoord: answer,
		History:  toTranscriptResponse(transcript).History,
	}, nil
}

func (s *chatService) Relay(ctx context.Context, userId uuid.UUID, req *dto.RelayChatRequest) (*dto.RelayChatResponse, error) {
	history := make([]entity.ChatMessage, 0, len(req.History)+1)
	for _, m := range req.History {
		history = append(history, entity.ChatMessage{Role: m.Role, Text: m.Content})
	}

	// The question rides separately on the wire; append it unless the client
	// already included it as the trailing user message.
	if n := len(history); n == 0 || history[n-1].Role != constant.ChatRoleUser || history[n-1].Text != req.Vraag {
		history = append(history, entity.ChatMessage{Role: constant.ChatRoleUser, Text: req.Vraag})
	}

	answer, failed := s.ask(ctx, req.Essay, history)
	s.persistLog(ctx, userId, "", req.Vraag, answer, failed)

	return &dto.RelayChatResponse{Antwoord: answer}, nil
}

// ask performs the single provider attempt. It never returns an error: any
// failure becomes the fixed fallback reply.
func (s *chatService) ask(ctx context.Context, essayBody string, history []entity.ChatMessage) (string, bool) {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{
		Role:    constant.ChatRoleSystem,
		Content: fmt.Sprintf(clarusSystemPrompt, essayBody),
	})
	for _, m := range history {
		// System-origin transcript entries never reach the provider.
		if m.Role == constant.ChatRoleSystem {
			continue
		}
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Text})
	}

	answer, err := s.llmProvider.Chat(ctx, messages)
	if err != nil {
		s.logger.Error("Chat", "Provider call failed", map[string]interface{}{"error": err.Error()})
		return constant.ChatFallbackReply, true
	}
	return answer, false
}

// persistLog stores the exchange for admin review. Best-effort: a failed
// write never disturbs the conversation.
func (s *chatService) persistLog(ctx context.Context, userId uuid.UUID, essaySlug, question, answer string, failed bool) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.ChatLogRepository().Create(ctx, &entity.ChatLog{
		Id:        uuid.New(),
		UserId:    userId,
		EssaySlug: essaySlug,
		Question:  question,
		Answer:    answer,
		Failed:    failed,
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn("Chat", "Failed to persist chat log", map[string]interface{}{"error": err.Error()})
	}
}

func (s *chatService) ListLogs(ctx context.Context, limit, offset int) ([]*dto.ChatLogItem, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.ChatLogRepository().FindAll(ctx,
		specification.OrderByCreatedAtDesc{},
		specification.Limit{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ChatLogItem, 0, len(logs))
	for _, l := range logs {
		items = append(items, &dto.ChatLogItem{
			Id:        l.Id,
			UserId:    l.UserId,
			EssaySlug: l.EssaySlug,
			Question:  l.Question,
			Answer:    l.Answer,
			Failed:    l.Failed,
			CreatedAt: l.CreatedAt,
		})
	}
	return items, nil
}
