package service

import (
	"context"
	"time"

	"smartbyte-be/internal/config"
	"smartbyte-be/internal/constant"
	"smartbyte-be/internal/dto"
	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/pkg/logger"
	"smartbyte-be/internal/repository/memory"
	"smartbyte-be/internal/repository/specification"
	"smartbyte-be/internal/repository/unitofwork"
	"smartbyte-be/pkg/dialogue"
	"smartbyte-be/pkg/dialogue/archetype"
	"smartbyte-be/pkg/dialogue/catalogfilter"
	"smartbyte-be/pkg/dialogue/prompt"
	"smartbyte-be/pkg/dialogue/stage"
	"smartbyte-be/pkg/dialogue/upsell"
	"smartbyte-be/pkg/llm"
)

type ISalesService interface {
	ProcessMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

// salesService orchestrates one conversation turn: classify, clarify or
// recommend, persist, publish. Generation is best-effort; everything the
// customer must receive has a deterministic fallback.
type salesService struct {
	uowFactory   unitofwork.RepositoryFactory
	sessionCache *memory.SessionCache
	stages       *stage.Classifier
	archetypes   *archetype.Classifier
	catalog      *catalogfilter.Filter
	upsells      *upsell.Selector
	prompts      *prompt.Builder
	llm          llm.LLMProvider
	publisher    IPublisherService
	salesCfg     config.SalesConfig
	log          logger.ILogger
}

func NewSalesService(
	uowFactory unitofwork.RepositoryFactory,
	sessionCache *memory.SessionCache,
	stages *stage.Classifier,
	archetypes *archetype.Classifier,
	catalog *catalogfilter.Filter,
	upsells *upsell.Selector,
	prompts *prompt.Builder,
	llmProvider llm.LLMProvider,
	publisher IPublisherService,
	salesCfg config.SalesConfig,
	log logger.ILogger,
) ISalesService {
	return &salesService{
		uowFactory:   uowFactory,
		sessionCache: sessionCache,
		stages:       stages,
		archetypes:   archetypes,
		catalog:      catalog,
		upsells:      upsells,
		prompts:      prompts,
		llm:          llmProvider,
		publisher:    publisher,
		salesCfg:     salesCfg,
		log:          log,
	}
}

func (s *salesService) ProcessMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.getOrCreateSession(ctx, uow, req.SessionKey)
	if err != nil {
		return nil, &dialogue.RecommendationFailedError{Op: "resolve session", Err: err}
	}

	// History is read before the current turn is appended, so a first
	// message sees an empty history.
	history, err := s.loadHistory(ctx, uow, session)
	if err != nil {
		return nil, &dialogue.RecommendationFailedError{Op: "load history", Err: err}
	}

	if err := uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
		SessionId: session.Id,
		Role:      dialogue.RoleUser,
		Content:   req.Message,
	}); err != nil {
		return nil, &dialogue.RecommendationFailedError{Op: "persist user message", Err: err}
	}

	analysis := s.stages.Analyze(req.Message, history, session.CustomerType)

	if analysis.RedirectNeeded {
		reply := s.prompts.OffTopicReply()
		if err := s.saveAssistantMessage(ctx, uow, session, reply); err != nil {
			return nil, err
		}
		return &dto.SendMessageResponse{
			AssistantMessage: reply,
			CustomerType:     session.CustomerType,
			Stage:            string(analysis.Stage),
			RecommendedItems: []dto.ProductDTO{},
		}, nil
	}

	arch := s.archetypes.Classify(req.Message, history)
	if session.CustomerType != string(arch.Archetype) {
		session.CustomerType = string(arch.Archetype)
		if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
			return nil, &dialogue.RecommendationFailedError{Op: "update session archetype", Err: err}
		}
		s.sessionCache.Save(session)
	}

	if analysis.NeedsClarification {
		reply := s.generateClarification(ctx, arch, analysis, req.Message, history)
		if err := s.saveAssistantMessage(ctx, uow, session, reply); err != nil {
			return nil, err
		}
		return &dto.SendMessageResponse{
			AssistantMessage: reply,
			CustomerType:     session.CustomerType,
			Stage:            string(analysis.Stage),
			RecommendedItems: []dto.ProductDTO{},
		}, nil
	}

	return s.recommend(ctx, uow, session, arch, analysis, req.Message, history)
}

// recommend runs the full recommendation pipeline once all required slots are
// filled.
func (s *salesService) recommend(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	session *entity.ChatSession,
	arch archetype.Result,
	analysis stage.Analysis,
	message string,
	history []dialogue.Turn,
) (*dto.SendMessageResponse, error) {
	state := analysis.Slots

	// A computer-plus-accessory request splits the stated budget; otherwise
	// the accessory rides on its own fixed cap.
	computerState := state
	accessoryBudget := s.salesCfg.AccessoryBudgetCap
	if state.RequestedAccessory != "" && state.HasBudget {
		computerState.BudgetAmount = state.BudgetAmount * s.salesCfg.BundleComputerShare
		accessoryBudget = state.BudgetAmount * (1 - s.salesCfg.BundleComputerShare)
		s.log.Info("SalesService", "budget split for bundle", map[string]interface{}{
			"computer_budget":  computerState.BudgetAmount,
			"accessory_budget": accessoryBudget,
			"accessory":        state.RequestedAccessory,
		})
	}

	products, err := s.catalog.Find(ctx, arch.Archetype, message, computerState, s.salesCfg.CatalogLimit)
	if err != nil {
		return nil, &dialogue.RecommendationFailedError{Op: "filter catalog", Err: err}
	}

	if len(products) == 0 {
		reply := s.prompts.NoMatchReply(state)
		if err := s.saveAssistantMessage(ctx, uow, session, reply); err != nil {
			return nil, err
		}
		return &dto.SendMessageResponse{
			AssistantMessage: reply,
			CustomerType:     session.CustomerType,
			Stage:            string(analysis.Stage),
			RecommendedItems: []dto.ProductDTO{},
		}, nil
	}

	mainProduct := products[0]

	upsellProduct, err := s.upsells.Select(ctx, mainProduct, arch.Archetype, state, history, accessoryBudget)
	if err != nil {
		// Upsell is optional; a failed lookup never blocks the main
		// recommendation.
		s.log.Warn("SalesService", "upsell selection failed", map[string]interface{}{"error": err.Error()})
		upsellProduct = nil
	}

	reply := s.generateRecommendation(ctx, arch, products, mainProduct, upsellProduct, message, history)

	recommendation := &entity.Recommendation{
		SessionId:    session.Id,
		ProductId:    mainProduct.Id,
		CustomerType: string(arch.Archetype),
		Message:      reply,
	}
	if upsellProduct != nil {
		recommendation.UpsellProductId = &upsellProduct.Id
	}
	if err := uow.RecommendationRepository().Create(ctx, recommendation); err != nil {
		return nil, &dialogue.RecommendationFailedError{Op: "persist recommendation", Err: err}
	}

	if err := s.saveAssistantMessage(ctx, uow, session, reply); err != nil {
		return nil, err
	}

	s.publishRecommendation(ctx, session, recommendation, mainProduct, upsellProduct)

	resp := &dto.SendMessageResponse{
		AssistantMessage: reply,
		CustomerType:     string(arch.Archetype),
		Stage:            string(stage.StageRecommendationGiven),
		RecommendedItems: []dto.ProductDTO{dto.ProductToDTO(mainProduct)},
	}
	if upsellProduct != nil {
		u := dto.ProductToDTO(upsellProduct)
		resp.UpsellItem = &u
	}
	return resp, nil
}

// generateClarification asks the model to phrase the clarifying question
// naturally; if the model is unavailable the bare question still goes out.
func (s *salesService) generateClarification(ctx context.Context, arch archetype.Result, analysis stage.Analysis, message string, history []dialogue.Turn) string {
	question := analysis.SuggestedQuestion
	if question == "" {
		question = arch.ClarifyingQuestion
	}

	systemPrompt := s.prompts.Clarifying(arch.Archetype, analysis.MissingSlots, question)
	reply, err := s.chat(ctx, systemPrompt, message, history, llm.WithTemperature(0.7), llm.WithMaxTokens(500))
	if err != nil {
		s.log.Warn("SalesService", "clarification generation failed, using template", map[string]interface{}{"error": err.Error()})
		return question
	}
	return reply
}

// generateRecommendation produces the guarded sales pitch. Any generation
// failure falls back to the deterministic template, and a successful reply
// still passes price validation.
func (s *salesService) generateRecommendation(
	ctx context.Context,
	arch archetype.Result,
	products []*entity.Product,
	mainProduct, upsellProduct *entity.Product,
	message string,
	history []dialogue.Turn,
) string {
	contextProducts := products
	if len(contextProducts) > 3 {
		contextProducts = contextProducts[:3]
	}

	systemPrompt := s.prompts.Guarded(arch.Archetype, arch.Profile, contextProducts, mainProduct, upsellProduct)
	reply, err := s.chat(ctx, systemPrompt, message, history, llm.WithTemperature(0.6), llm.WithMaxTokens(600))
	if err != nil {
		s.log.Warn("SalesService", "recommendation generation failed, using template", map[string]interface{}{"error": err.Error()})
		return s.prompts.TemplateRecommendation(mainProduct, upsellProduct, arch.Archetype, arch.Profile)
	}
	return prompt.EnsurePrice(reply, mainProduct.Price)
}

// chat runs one guarded LLM call: system prompt, the last few turns for
// context, then the current message, all under the configured timeout.
func (s *salesService) chat(ctx context.Context, systemPrompt, message string, history []dialogue.Turn, opts ...llm.Option) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.salesCfg.GenerateTimeout)
	defer cancel()

	messages := []llm.Message{{Role: dialogue.RoleSystem, Content: systemPrompt}}

	recent := history
	if len(recent) > 4 {
		recent = recent[len(recent)-4:]
	}
	for _, turn := range recent {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Text})
	}

	messages = append(messages, llm.Message{Role: dialogue.RoleUser, Content: message})

	return s.llm.Chat(ctx, messages, opts...)
}

func (s *salesService) getOrCreateSession(ctx context.Context, uow unitofwork.UnitOfWork, sessionKey string) (*entity.ChatSession, error) {
	if cached, ok := s.sessionCache.Get(sessionKey); ok {
		return cached, nil
	}

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = &entity.ChatSession{
			SessionKey:   sessionKey,
			CustomerType: constant.DefaultCustomerType,
		}
		if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
			return nil, err
		}
		if err := s.publisher.PublishSalesEvent(ctx, constant.EventSessionStarted, map[string]interface{}{
			"session_id":  session.Id.String(),
			"session_key": session.SessionKey,
		}); err != nil {
			s.log.Warn("SalesService", "failed to publish session event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.sessionCache.Save(session)
	return session, nil
}

func (s *salesService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession) ([]dialogue.Turn, error) {
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionId{SessionId: session.Id},
		specification.OldestFirst{},
	)
	if err != nil {
		return nil, err
	}

	turns := make([]dialogue.Turn, len(messages))
	for i, m := range messages {
		turns[i] = dialogue.Turn{
			Role:      m.Role,
			Text:      m.Content,
			Timestamp: m.CreatedAt,
		}
	}
	return turns, nil
}

func (s *salesService) saveAssistantMessage(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, content string) error {
	if err := uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
		SessionId: session.Id,
		Role:      dialogue.RoleAssistant,
		Content:   content,
	}); err != nil {
		return &dialogue.RecommendationFailedError{Op: "persist assistant message", Err: err}
	}
	return nil
}

func (s *salesService) publishRecommendation(ctx context.Context, session *entity.ChatSession, rec *entity.Recommendation, main, upsellProduct *entity.Product) {
	payload := map[string]interface{}{
		"session_id":    session.Id.String(),
		"session_key":   session.SessionKey,
		"customer_type": rec.CustomerType,
		"product_sku":   main.SKU,
		"product_name":  main.DisplayName(),
		"price":         main.Price,
		"created_at":    time.Now().UTC().Format(time.RFC3339),
	}
	if upsellProduct != nil {
		payload["upsell_sku"] = upsellProduct.SKU
		payload["upsell_price"] = upsellProduct.Price
	}

	if err := s.publisher.PublishSalesEvent(ctx, constant.EventRecommendationCreated, payload); err != nil {
		s.log.Warn("SalesService", "failed to publish recommendation event", map[string]interface{}{"error": err.Error()})
	}
}
