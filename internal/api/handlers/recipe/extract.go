package recipe

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-extractor/internal/core/extract"
	core "recipe-extractor/internal/core/recipe"
	"recipe-extractor/internal/infrastructure/config"
	"recipe-extractor/internal/pkg/common"
)

// ExtractRequest 食譜提取請求
type ExtractRequest struct {
	URL            string  `json:"url" binding:"required"`    // 食譜網頁網址
	TargetServings float64 `json:"target_servings,omitempty"` // 目標份量，省略時不縮放
	ConvertUnits   *bool   `json:"convert_units,omitempty"`   // 覆寫單位轉換設定
}

// ExtractResponse 食譜提取響應
type ExtractResponse struct {
	Recipe           *core.Recipe `json:"recipe"`
	ExtractionMethod string       `json:"extraction_method"`
	UsedAI           bool         `json:"used_ai"`
	TodoItems        []string     `json:"todo_items"`
	ItemsCount       int          `json:"items_count"`
}

// Handler 食譜提取處理程序
type Handler struct {
	extractService *extract.Service
	config         *config.Config
}

// NewHandler 創建新的食譜提取處理程序
func NewHandler(extractService *extract.Service, cfg *config.Config) *Handler {
	return &Handler{
		extractService: extractService,
		config:         cfg,
	}
}

// HandleExtract 從網址提取食譜並轉成購物清單
func (h *Handler) HandleExtract(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	common.LogInfo("開始處理食譜提取請求",
		zap.String("request_id", requestID),
		zap.String("url", req.URL),
		zap.Float64("target_servings", req.TargetServings),
		zap.String("client_ip", c.ClientIP()),
	)

	result, err := h.extractService.ExtractFromURL(c.Request.Context(), req.URL)
	if err != nil {
		h.writeError(c, requestID, req.URL, err)
		return
	}

	// 縮放只影響清單項目，回傳的食譜維持原始數量
	ingredients := result.Recipe.Ingredients
	if req.TargetServings > 0 {
		ingredients = core.ScaleIngredients(ingredients, result.Recipe.Servings, req.TargetServings)
	}

	convertUnits := h.config.Extract.ConvertUnits
	if req.ConvertUnits != nil {
		convertUnits = *req.ConvertUnits
	}
	todoItems := core.FormatForTodo(ingredients, convertUnits)

	common.LogInfo("食譜提取請求完成",
		zap.String("request_id", requestID),
		zap.String("title", result.Recipe.Title),
		zap.String("method", result.ExtractionMethod),
		zap.Int("items", len(todoItems)),
	)

	c.JSON(http.StatusOK, ExtractResponse{
		Recipe:           result.Recipe,
		ExtractionMethod: result.ExtractionMethod,
		UsedAI:           result.UsedAI,
		TodoItems:        todoItems,
		ItemsCount:       len(todoItems),
	})
}

// writeError 依錯誤類型決定狀態碼
func (h *Handler) writeError(c *gin.Context, requestID, url string, err error) {
	common.LogError("食譜提取失敗",
		zap.String("request_id", requestID),
		zap.String("url", url),
		zap.Error(err),
	)

	var customErr *common.CustomError
	if errors.As(err, &customErr) {
		c.JSON(customErr.Status, common.ErrorResponse{
			Code:    customErr.Code,
			Message: customErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    common.ErrCodeInternalError,
		Message: "食譜提取失敗",
	})
}
