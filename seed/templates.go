package seed

// HTML fragments the widget renders verbatim. Opaque to the engine: rules
// and fallbacks return them, nothing parses them.

const CounselorLinksHTML = `
<div class="consult-container">
  <p style="font-weight:bold; margin-bottom:8px; font-size:14px; color:#e74c3c;">
    <i class="fa-solid fa-triangle-exclamation"></i> 정확한 정보 확인이 필요합니다.
  </p>
  <p style="font-size:13px; color:#555; margin-bottom:15px; line-height:1.4;">
    죄송합니다. 현재 데이터베이스에서 정확한 답변을 찾지 못했습니다.<br>
    사람의 확인이 필요한 내용일 수 있으니, 아래 버튼을 눌러 <b>상담사</b>에게 문의해주세요.
  </p>
  <a href="javascript:void(0)" onclick="window.open('http://pf.kakao.com/_lxmZsxj/chat','kakao','width=500,height=600,scrollbars=yes');" class="consult-btn kakao">
     <i class="fa-solid fa-comment"></i> 카카오톡 상담원으로 연결
  </a>
  <a href="javascript:void(0)" onclick="window.open('https://talk.naver.com/ct/wc4u67?frm=psf','naver','width=500,height=600,scrollbars=yes');" class="consult-btn naver">
     <i class="fa-solid fa-comments"></i> 네이버 톡톡 상담원으로 연결
  </a>
</div>`

const CounselorLinksCallHTML = `
<div class="consult-container">
  <a href="javascript:void(0)" onclick="window.open('http://pf.kakao.com/_lxmZsxj/chat','kakao','width=500,height=600,scrollbars=yes');" class="consult-btn kakao" style="cursor:pointer">
     <i class="fa-solid fa-comment"></i> 카카오톡 상담원으로 연결
  </a>
  <a href="javascript:void(0)" onclick="window.open('https://talk.naver.com/ct/wc4u67?frm=psf','naver','width=500,height=600,scrollbars=yes');" class="consult-btn naver" style="cursor:pointer">
     <i class="fa-solid fa-comments"></i> 네이버 톡톡 상담원으로 연결
  </a>
</div>`

// FallbackMessageHTML is the human-handoff template: the response for every
// no-evidence terminal, never an error status.
const FallbackMessageHTML = `<div style="margin-top: 10px;">` + CounselorLinksHTML + `</div>`

const LoginButtonHTML = `<div style="margin-top:15px;"><a href="/member/login.html" class="consult-btn" style="background:#58b5ca; color:#fff; justify-content:center;">로그인 하러 가기 →</a></div>`

// RecommendApology is returned when promotional copy generation fails.
const RecommendApology = "죄송합니다. 지금은 추천을 준비하지 못했어요. 잠시 후 다시 시도해 주세요."

// DefaultPersona is the active system instruction until an administrator
// persists a replacement.
const DefaultPersona = `
1. 역할: 당신은 '요기보(Yogibo)'의 AI 상담원입니다.
2. ★ 중요 임무:
   - 사용자 질문에 대해 아래 제공되는 [참고 정보]들을 꼼꼼히 읽어보고 답변을 작성하세요.
   - [참고 정보]는 FAQ, 제품 매뉴얼, 회사 규정 등이 섞여 있습니다. 이 중에서 질문과 가장 관련 있는 내용을 찾아내세요.
   - **만약 [참고 정보]를 다 읽어봐도 질문에 대한 답을 찾을 수 없거나, 요기보와 전혀 관련 없는 내용(코딩, 주식, 날씨 등)이라면, 절대 지어내지 말고 오직 "NO_CONTEXT"라고만 출력하세요.**
3. 답변 스타일:
   - 친절하고 전문적인 톤으로 답변하세요.
   - 링크는 [버튼명](URL) 형식으로, 이미지는 <img src="..."> 태그를 그대로 유지하세요.
`

// RefusalSentinel is the literal token the completion service is instructed
// to emit when it cannot ground an answer in the supplied evidence.
const RefusalSentinel = "NO_CONTEXT"
